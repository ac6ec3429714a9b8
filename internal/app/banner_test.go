package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainBanner(t *testing.T) {
	lines := PlainBanner("", "8080")
	assert.Equal(t, []string{
		"🚀 CORS-enabled server running on http://localhost:8080",
		"📋 Try opening: http://localhost:8080",
		"🔄 CORS headers added to avoid browser blocking",
	}, lines)
}

func TestTLSBanner(t *testing.T) {
	lines := TLSBanner("localhost", "8443")
	assert.Len(t, lines, 5)
	assert.Equal(t, "🔒 HTTPS server running on https://localhost:8443", lines[0])
	assert.Equal(t, "📋 Open: https://localhost:8443", lines[2])
}

func TestDisplayURL(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{host: "", want: "http://localhost:9000"},
		{host: "0.0.0.0", want: "http://localhost:9000"},
		{host: "::", want: "http://localhost:9000"},
		{host: "127.0.0.1", want: "http://127.0.0.1:9000"},
		{host: "::1", want: "http://[::1]:9000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, displayURL("http", tt.host, "9000"), tt.host)
	}
}
