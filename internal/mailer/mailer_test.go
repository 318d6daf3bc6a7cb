package mailer

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildWelcome(t *testing.T) {
	msg, err := buildWelcome("no-reply@acme.com", WelcomeMessage{
		To:           "jane@acme.com",
		EmployeeName: "Jane Doe",
		TenantName:   "Acme",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	require.Contains(t, raw, "Subject: Welcome to Acme")
	require.Contains(t, raw, "jane@acme.com")
	require.Contains(t, raw, "Hello Jane Doe,")
}

func TestBuildWelcome_InvalidRecipient(t *testing.T) {
	_, err := buildWelcome("no-reply@acme.com", WelcomeMessage{To: "not an address"})
	require.Error(t, err)
}

func TestNopMailer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	err := NewNopMailer(logger).SendWelcome(context.Background(), WelcomeMessage{To: "jane@acme.com"})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "welcome email skipped")
}
