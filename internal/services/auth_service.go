package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/troopay/troopay-backend/internal/models"
	"github.com/troopay/troopay-backend/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserDoesNotExist  = errors.New("user does not exist")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUserAlreadyExists = errors.New("user already registered")
	ErrGoogleAccount     = errors.New("user authenticated with google")
)

// AuthService resolves incoming credentials to a single user record.
// Three states exist per email (no user, placeholder, credentialed) and
// every path below must agree on them, otherwise two users end up
// sharing one email.
type AuthService struct {
	store  storage.Store
	tokens *TokenService
}

func NewAuthService(store storage.Store, tokens *TokenService) *AuthService {
	return &AuthService{store: store, tokens: tokens}
}

// SignIn authenticates an email/password pair. A placeholder row with
// no usable credential is reported as nonexistent; a user whose only
// credential is a Google ID falls through to the password check, where
// the empty hash never matches.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.store.FindUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, "", ErrUserDoesNotExist
	}
	if err != nil {
		return nil, "", err
	}

	if !user.HasCredential() {
		return nil, "", ErrUserDoesNotExist
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidPassword
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// SignUp registers an email/password account. An existing placeholder
// (added to a group by email before ever signing up) is completed in
// place so its id and memberships survive.
func (s *AuthService) SignUp(ctx context.Context, firstname, lastname, email, password string) (*models.User, string, error) {
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, "", err
	}

	if user != nil {
		if user.GoogleID != nil {
			return nil, "", ErrGoogleAccount
		}
		if user.Password != "" {
			return nil, "", ErrUserAlreadyExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	if user != nil {
		user.FirstName = firstname
		user.LastName = lastname
		user.Password = string(hash)
		if err := s.store.UpdateUser(ctx, user); err != nil {
			return nil, "", err
		}
	} else {
		user = &models.User{
			ID:        uuid.New(),
			FirstName: firstname,
			LastName:  lastname,
			Email:     email,
			Password:  string(hash),
		}
		if err := s.store.CreateUser(ctx, user); err != nil {
			return nil, "", err
		}
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GoogleAuth resolves a Google identity to a user. Lookup order is
// Google ID first (repeat sign-ins), then email, which links the Google
// identity onto a previously password-only or placeholder account
// instead of creating a duplicate.
func (s *AuthService) GoogleAuth(ctx context.Context, profile *GoogleProfile) (*models.User, string, error) {
	user, err := s.store.FindUserByGoogleID(ctx, profile.ID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, "", err
	}

	if user == nil {
		existing, err := s.store.FindUserByEmail(ctx, profile.Email)
		switch {
		case err == nil:
			existing.GoogleID = &profile.ID
			existing.FirstName = profile.GivenName
			existing.LastName = profile.FamilyName
			existing.AvatarURL = profile.Picture
			if err := s.store.UpdateUser(ctx, existing); err != nil {
				return nil, "", err
			}
			user = existing
		case errors.Is(err, storage.ErrNotFound):
			user = &models.User{
				ID:        uuid.New(),
				FirstName: profile.GivenName,
				LastName:  profile.FamilyName,
				Email:     profile.Email,
				GoogleID:  &profile.ID,
				AvatarURL: profile.Picture,
			}
			if err := s.store.CreateUser(ctx, user); err != nil {
				return nil, "", err
			}
		default:
			return nil, "", err
		}
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
