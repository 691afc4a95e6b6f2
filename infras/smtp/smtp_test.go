package smtp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage_HTMLIsPreferredAlternative(t *testing.T) {
	settings := Settings{
		FromName: "The Studio",
		Username: "studio@example.com",
	}
	message := Message{
		To:       "jamie@example.com",
		Subject:  "Booking confirmed",
		HTMLBody: "<p>See you soon</p>",
		TextBody: "See you soon",
	}

	msg, err := buildMessage(settings, message)
	assert.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	assert.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "multipart/alternative")

	plainIdx := strings.Index(raw, "text/plain")
	htmlIdx := strings.Index(raw, "text/html")
	assert.NotEqual(t, -1, plainIdx)
	assert.NotEqual(t, -1, htmlIdx)

	// Clients render the last alternative part they support, so the HTML part
	// must come after the plain text one.
	assert.Greater(t, htmlIdx, plainIdx)
}

func TestBuildMessage_HTMLOnly(t *testing.T) {
	settings := Settings{
		FromName: "The Studio",
		Username: "studio@example.com",
	}
	message := Message{
		To:       "jamie@example.com",
		Subject:  "Booking confirmed",
		HTMLBody: "<p>See you soon</p>",
	}

	msg, err := buildMessage(settings, message)
	assert.NoError(t, err)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	assert.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "text/html")
	assert.NotContains(t, raw, "multipart/alternative")
}

func TestBuildMessage_InvalidRecipient(t *testing.T) {
	settings := Settings{
		FromName: "The Studio",
		Username: "studio@example.com",
	}
	message := Message{
		To:      "not-an-address",
		Subject: "Booking confirmed",
	}

	_, err := buildMessage(settings, message)
	assert.Error(t, err)
}
