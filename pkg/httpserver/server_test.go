package httpserver_test

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/usersvc/pkg/httpserver"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestServerRun(t *testing.T) {
	t.Parallel()

	t.Run("serves and shuts down on context cancel", func(t *testing.T) {
		t.Parallel()
		addr := freeAddr(t)
		srv := httpserver.New(httpserver.WithAddr(addr))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("ok"))
			}))
		}()

		var resp *http.Response
		var err error
		require.Eventually(t, func() bool {
			resp, err = http.Get(fmt.Sprintf("http://%s/", addr))
			return err == nil
		}, 2*time.Second, 20*time.Millisecond)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		assert.Equal(t, "ok", string(body))

		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(3 * time.Second):
			t.Fatal("server did not shut down")
		}
	})

	t.Run("start failure on occupied port", func(t *testing.T) {
		t.Parallel()
		l, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer l.Close()

		srv := httpserver.New(httpserver.WithAddr(l.Addr().String()))
		err = srv.Run(context.Background(), nil)
		require.ErrorIs(t, err, httpserver.ErrStart)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	srv := httpserver.NewFromConfig(httpserver.Config{
		Addr:            freeAddr(t),
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		IdleTimeout:     time.Second,
		ShutdownTimeout: time.Second,
	})
	require.NotNil(t, srv)
}

func TestOptionValidation(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { httpserver.WithAddr("") })
	assert.Panics(t, func() { httpserver.WithReadTimeout(0) })
	assert.Panics(t, func() { httpserver.WithShutdownTimeout(-time.Second) })
}
