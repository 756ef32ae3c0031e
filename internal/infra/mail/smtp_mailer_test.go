package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage(
		"club@example.com",
		[]string{"ann@example.com", "bob@example.com"},
		"Open coffee orders",
		"Cappuccino-2\nLatte-1",
	))

	header, body, found := strings.Cut(msg, "\r\n\r\n")
	assert.True(t, found)
	assert.Contains(t, header, "From: club@example.com")
	assert.Contains(t, header, "To: ann@example.com, bob@example.com")
	assert.Contains(t, header, "Subject: Open coffee orders")
	assert.Contains(t, header, "Content-Type: text/plain")
	assert.Equal(t, "Cappuccino-2\nLatte-1", body)
}
