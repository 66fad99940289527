package httpserver

import (
	"net/http"
	"time"
)

// RequestTimeout is the per-request deadline the router enforces. The
// server's write timeout sits above it so handler deadlines fire first and
// produce a proper response instead of a severed connection.
const RequestTimeout = 30 * time.Second

// New builds the API server. Requests carry small JSON bodies, so the read
// timeout stays tight; the write timeout leaves room for the in-handler
// deadline to expire cleanly.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       RequestTimeout,
		WriteTimeout:      RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
