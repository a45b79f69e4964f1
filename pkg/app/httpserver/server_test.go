package httpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func listen(t *testing.T) net.Listener {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return ln
}

func TestServeListener_ShutsDownAndDrains(t *testing.T) {
	ln := listen(t)
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})}

	ctx, cancel := context.WithCancel(context.Background())
	var drained []string
	done := make(chan error, 1)
	go func() {
		done <- ServeListener(ctx, zap.NewNop(), srv, ln, time.Second,
			func(context.Context) error { drained = append(drained, "rpc"); return nil },
			func(context.Context) error { drained = append(drained, "store"); return nil },
		)
	}()

	resp, err := http.Get(fmt.Sprintf("http://%s/", ln.Addr()))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "OK", string(body))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, []string{"rpc", "store"}, drained)
}

func TestServeListener_DrainErrorsAreJoined(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	errStore := errors.New("store close failed")
	called := false
	err := ServeListener(ctx, nil, &http.Server{}, listen(t), 0,
		func(context.Context) error { return errStore },
		func(context.Context) error { called = true; return nil },
	)
	require.ErrorIs(t, err, errStore)
	assert.True(t, called)
}

func TestServe_BindError(t *testing.T) {
	ln := listen(t)
	defer ln.Close()

	err := Serve(context.Background(), zap.NewNop(), &http.Server{Addr: ln.Addr().String()}, time.Second)
	require.Error(t, err)

	require.Error(t, Serve(context.Background(), nil, nil, time.Second))
}
