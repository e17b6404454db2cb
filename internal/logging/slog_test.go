package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeHost(t *testing.T) {
	tests := map[string]string{
		"":                                        "<empty>",
		"https://api.cluster.example.com:6443":    "https://api.cluster.example.com:6443",
		"https://api.example:6443":                "https://api.example:6443",
		"https://192.168.1.100:6443":              "https://<redacted-ip>:6443",
		"https://192.168.1.100":                   "https://<redacted-ip>",
		"https://10.0.0.1:6443/base":              "https://<redacted-ip>:6443/base",
		"192.168.1.100":                           "<redacted-ip>",
		"10.0.0.1:6443":                           "<redacted-ip>:6443",
		"https://[2001:db8::1]:6443":              "https://<redacted-ip>:6443",
		"2001:db8::1":                             "<redacted-ip>",
		"[2001:db8:85a3::8a2e:370:7334]:6443":     "<redacted-ip>:6443",
		"2001:0db8:85a3:0000:0000:8a2e:0370:7334": "<redacted-ip>",
	}

	for host, want := range tests {
		t.Run(host, func(t *testing.T) {
			assert.Equal(t, want, SanitizeHost(host))
		})
	}
}

func TestSanitizeToken(t *testing.T) {
	assert.Equal(t, "<empty>", SanitizeToken(""))
	assert.Equal(t, "[token:3 chars]", SanitizeToken("abc"))

	token := "eyJhbGciOiJSUzI1NiIsImtpZCI6..." //nolint:gosec // Test token, not a real credential
	masked := SanitizeToken(token)
	assert.Equal(t, "[token:31 chars]", masked)
	assert.NotContains(t, masked, "eyJ", "no token content may be logged")
}

func TestAttributes(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		assert.Equal(t, slog.String(KeyOperation, "list"), Operation("list"))
		assert.Equal(t, slog.String(KeyNamespace, "demo"), Namespace("demo"))
		assert.Equal(t, slog.String(KeyResource, "pods"), Resource("pods"))
		assert.Equal(t, slog.String(KeyStatus, "not_found"), Status(StatusNotFound))
		assert.Equal(t, slog.String(KeyOutput, "yaml"), Output("yaml"))
		assert.Equal(t, int64(3), ItemCount(3).Value.Int64())
	})

	t.Run("errors", func(t *testing.T) {
		assert.Equal(t, "", Err(nil).Value.String())
		assert.Equal(t, "", SanitizedErr(nil).Value.String())
		assert.Equal(t, "boom", Err(errors.New("boom")).Value.String())

		err := errors.New(`Get "https://192.168.1.100:6443/api/v1/namespaces/demo": dial tcp 192.168.1.100:6443: connection refused`)
		value := SanitizedErr(err).Value.String()
		assert.Equal(t, KeyError, SanitizedErr(err).Key)
		assert.NotContains(t, value, "192.168.1.100")
		assert.Contains(t, value, "/api/v1/namespaces/demo")
		assert.Contains(t, value, "connection refused")

		err = errors.New("failed to connect to https://api.cluster.example.com:6443")
		assert.Contains(t, SanitizedErr(err).Value.String(), "api.cluster.example.com")
	})

	t.Run("host and token", func(t *testing.T) {
		assert.Equal(t, "https://<redacted-ip>:6443", Host("https://192.168.1.1:6443").Value.String())
		assert.Equal(t, "[token:12 chars]", Token("secret-token").Value.String())
	})
}

func TestGroupedAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", FormatJSON, &buf)
	require.NoError(t, err)

	logger.Info("request",
		Query("get", "namespaces", "demo"),
		Connection("https://10.0.0.1:6443", "secret-token"))

	out := buf.String()
	assert.Contains(t, out, `"query":{"operation":"get","resource":"namespaces","namespace":"demo"}`)
	assert.Contains(t, out, `"connection":{"host":"https://<redacted-ip>:6443","token":"[token:12 chars]"}`)
	assert.NotContains(t, out, "secret-token")
	assert.NotContains(t, out, "10.0.0.1")
}
