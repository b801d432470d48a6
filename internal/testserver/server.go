// Package testserver is the HTTP server requests are driven against in
// examples and end-to-end tests.
package testserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/rs/zerolog"
)

var DefaultAddr = net.JoinHostPort("::", "8888")

const HomeBody = "from home"

// Handler answers "from home" on every path except /echo, which sends back
// the request exactly as the server parsed it.
func Handler(log zerolog.Logger) http.Handler {
	m := http.NewServeMux()
	var home http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
		log.Info().Str("method", r.Method).Str("uri", r.RequestURI).Msg("received home request")
		_, _ = w.Write([]byte(HomeBody))
	}
	var echo http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
		dump, err := httputil.DumpRequest(r, true)
		if err != nil {
			log.Error().Err(err).Msg("dump request")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Debug().Int("bytes", len(dump)).Msg("echoing request")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write(dump)
	}
	m.Handle("/", home)
	m.Handle("/echo", echo)
	return m
}

func New(addr string, log zerolog.Logger) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           Handler(log),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run serves on ln until ctx is done, then shuts the server down.
func Run(ctx context.Context, srv *http.Server, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
