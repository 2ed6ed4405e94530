package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmtpAddr(t *testing.T) {
	t.Run("mac dinh gmail", func(t *testing.T) {
		t.Setenv("SMTP_HOST", "")
		t.Setenv("SMTP_PORT", "")
		assert.Equal(t, "smtp.gmail.com:587", smtpAddr())
	})

	t.Run("doc tu env", func(t *testing.T) {
		t.Setenv("SMTP_HOST", "mail.example.edu")
		t.Setenv("SMTP_PORT", "2525")
		assert.Equal(t, "mail.example.edu:2525", smtpAddr())
		assert.Equal(t, "mail.example.edu", smtpHost())
	})
}
