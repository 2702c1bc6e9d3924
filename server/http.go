package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

type httpServer struct {
	inner http.Server

	name string
}

func newHTTPServer(name string, handler http.Handler) *httpServer {
	const (
		readHeaderTimeout = 20 * time.Second
		readTimeout       = 20 * time.Second
		writeTimeout      = 20 * time.Second
	)

	return &httpServer{
		inner: http.Server{
			ReadTimeout:       readTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
			WriteTimeout:      writeTimeout,

			Handler: handler,
		},

		name: name,
	}
}

func (s *httpServer) String() string {
	return s.name
}

// Serve accepts connections on `l` until `ctx` is done.
// Running requests get `shutdownTimeout` to complete.
func (s *httpServer) Serve(ctx context.Context, l net.Listener) error {
	const shutdownTimeout = 5 * time.Second

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.inner.Shutdown(shutdownCtx); err != nil {
			_ = s.inner.Close()
		}
	}()

	err := s.inner.Serve(l)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
