package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/troopay/troopay-backend/internal/mail"
	"github.com/troopay/troopay-backend/internal/storage"
)

const recoveryCodeLength = 5

// RecoveryService issues one-time password reset codes by email.
// Delivery is fire-and-forget: the caller gets a success as soon as the
// code is generated, and a failed send only produces a log line.
type RecoveryService struct {
	store  storage.Store
	sender mail.Sender
	codeFn func(length int) (string, error)
}

func NewRecoveryService(store storage.Store, sender mail.Sender) *RecoveryService {
	return &RecoveryService{store: store, sender: sender, codeFn: numericCode}
}

// RequestRecovery mails a reset code to the given address. Accounts
// without a password hash (Google-only, placeholders) cannot use
// password recovery and are reported as nonexistent.
func (s *RecoveryService) RequestRecovery(ctx context.Context, email string) error {
	user, err := s.store.FindUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrUserDoesNotExist
	}
	if err != nil {
		return err
	}
	if user.Password == "" {
		return ErrUserDoesNotExist
	}

	code, err := s.codeFn(recoveryCodeLength)
	if err != nil {
		return fmt.Errorf("failed to generate recovery code: %w", err)
	}

	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	msg := mail.Message{
		To:      user.Email,
		Subject: "TrooPay - Password reset code",
		HTML:    mail.Template("Password reset code", name, recoveryBody(code)),
	}

	go func() {
		if err := s.sender.Send(context.Background(), msg); err != nil {
			slog.Error("failed to send recovery email", "error", err)
			return
		}
		slog.Info("recovery email sent")
	}()

	return nil
}

func recoveryBody(code string) string {
	return fmt.Sprintf(`
    <p>We received a request to reset your password.</p>
    <div style="background: #ddd;padding: 10px; text-align: center;">
      <h2>%s</h2>
    </div>
    <p>Please use the code above to reset your password in our app.</p>
    <p>If you did not request a password reset, ignore this email.</p>
    `, code)
}

// numericCode draws each digit from crypto/rand.
func numericCode(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = '0' + byte(n.Int64())
	}
	return string(digits), nil
}
