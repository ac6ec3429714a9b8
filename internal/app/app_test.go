package app

import (
	"bufio"
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/devserve/internal/api/http/context"
	"github.com/dtroode/devserve/internal/api/http/handler"
	"github.com/dtroode/devserve/internal/api/http/middleware"
	"github.com/dtroode/devserve/internal/api/http/router"
	"github.com/dtroode/devserve/internal/mocks"
	"github.com/dtroode/devserve/internal/model"
	"github.com/dtroode/devserve/internal/server"
	"github.com/dtroode/devserve/internal/testutil"
)

func newRouter(t *testing.T, allowCredentials bool) http.Handler {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("dashboard"), 0o644))

	r := router.New(
		handler.NewStatic(root),
		middleware.NewCORS(allowCredentials),
		httpctx.NewManager(),
		testutil.MakeNoopLogger(),
	)
	return r.Register()
}

func waitReady(t *testing.T, srv *server.HTTPServer) string {
	t.Helper()

	select {
	case <-srv.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("server did not become ready")
	}

	addr, err := srv.ListenAddr()
	require.NoError(t, err)
	return addr.String()
}

func TestApp_Run_PlainServer(t *testing.T) {
	t.Parallel()

	srv := server.NewHTTPServer(newRouter(t, true), "127.0.0.1:0", testutil.MakeNoopLogger())
	var out bytes.Buffer
	a := New(srv, server.NewPlainListener(), PlainBanner("", "8080"), &out, testutil.MakeNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	addr := waitReady(t, srv)

	resp, err := http.Get("http://" + addr + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "dashboard", string(body))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))

	cancel()
	require.NoError(t, <-done)

	assert.Contains(t, out.String(), "🚀 CORS-enabled server running on http://localhost:8080")
	assert.Contains(t, out.String(), "👋 Server stopped")
}

func TestApp_Run_TLSServer(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pair := model.CertPair{
		CertFile: filepath.Join(dir, "cert.pem"),
		KeyFile:  filepath.Join(dir, "key.pem"),
	}
	testutil.CreateTestCertificate(t, pair.CertFile, pair.KeyFile)

	srv := server.NewHTTPServer(newRouter(t, false), "127.0.0.1:0", testutil.MakeNoopLogger())
	var out bytes.Buffer
	a := New(srv, server.NewTLSListener(pair), TLSBanner("localhost", "8443"), &out, testutil.MakeNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	addr := waitReady(t, srv)

	client := &http.Client{
		Transport: &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}},
	}
	defer client.CloseIdleConnections()

	resp, err := client.Get("https://" + addr + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	require.NotNil(t, resp.TLS)
	assert.True(t, resp.TLS.HandshakeComplete)
	assert.Equal(t, "dashboard", string(body))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Credentials"))

	req, err := http.NewRequest(http.MethodOptions, "https://"+addr+"/api", nil)
	require.NoError(t, err)
	resp, err = client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	require.NoError(t, <-done)

	assert.Contains(t, out.String(), "🔒 HTTPS server running on https://localhost:8443")
	assert.Contains(t, out.String(), "⚠️  You may need to accept the self-signed certificate in your browser")
}

func TestApp_Run_ListenError(t *testing.T) {
	t.Parallel()

	srv := server.NewHTTPServer(http.NotFoundHandler(), ":0", testutil.MakeNoopLogger())
	sec := mocks.NewSecurityLayer(t)
	listenErr := errors.New("address already in use")
	sec.On("Listen", "tcp", ":0").Return(nil, listenErr)

	var out bytes.Buffer
	a := New(srv, sec, PlainBanner("", "8080"), &out, testutil.MakeNoopLogger())

	err := a.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, listenErr)
	assert.Contains(t, err.Error(), "server error")
	assert.Empty(t, out.String())
}

func TestApp_Run_CancelledBeforeStart(t *testing.T) {
	t.Parallel()

	srv := server.NewHTTPServer(http.NotFoundHandler(), "127.0.0.1:0", testutil.MakeNoopLogger())
	var out bytes.Buffer
	a := New(srv, server.NewPlainListener(), nil, &out, testutil.MakeNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, a.Run(ctx))
}

func TestApp_Run_AsteriskPreflight(t *testing.T) {
	t.Parallel()

	srv := server.NewHTTPServer(newRouter(t, true), "127.0.0.1:0", testutil.MakeNoopLogger())
	a := New(srv, server.NewPlainListener(), nil, io.Discard, testutil.MakeNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	addr := waitReady(t, srv)

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()

	_, err = io.WriteString(conn, "OPTIONS * HTTP/1.1\r\nHost: localhost\r\nConnection: close\r\n\r\n")
	require.NoError(t, err)

	resp, err := http.ReadResponse(bufio.NewReader(conn), nil)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Authorization, Content-Type, Accept", resp.Header.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))

	cancel()
	require.NoError(t, <-done)
}
