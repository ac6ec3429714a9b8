package app

import (
	"net"
	"net/url"
)

// PlainBanner returns the startup lines of the plain HTTP server.
func PlainBanner(host, port string) []string {
	u := displayURL("http", host, port)
	return []string{
		"🚀 CORS-enabled server running on " + u,
		"📋 Try opening: " + u,
		"🔄 CORS headers added to avoid browser blocking",
	}
}

// TLSBanner returns the startup lines of the HTTPS server.
func TLSBanner(host, port string) []string {
	u := displayURL("https", host, port)
	return []string{
		"🔒 HTTPS server running on " + u,
		"⚠️  You may need to accept the self-signed certificate in your browser",
		"📋 Open: " + u,
		"🔄 This avoids mixed content issues with GitHub API",
		"🛑 Press Ctrl+C to stop",
	}
}

// displayURL points wildcard listen hosts at localhost so the URL can be
// opened in a browser.
func displayURL(scheme, host, port string) string {
	switch host {
	case "", "0.0.0.0", "::":
		host = "localhost"
	}
	u := url.URL{Scheme: scheme, Host: net.JoinHostPort(host, port)}
	return u.String()
}
