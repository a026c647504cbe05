package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplate(t *testing.T) {
	html := Template("Password reset code", "Ada Lovelace", "<p>body</p>")

	assert.Contains(t, html, "TrooPay")
	assert.Contains(t, html, "Password reset code")
	assert.Contains(t, html, "Hello, Ada Lovelace.")
	assert.Contains(t, html, "<p>body</p>")
}
