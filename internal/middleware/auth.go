package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

// TokenHeader carries the shared service token between the draft service and
// the workout store.
const TokenHeader = "X-FITTRACK-TOKEN"

type TokenAuthHandler struct {
	token                string
	allowedPaths         map[string]bool
	allowedPathsPrefixes []string
}

// NewTokenAuthHandler creates a token check. An empty token disables the
// check, useful in local development.
func NewTokenAuthHandler(token string, allowedPaths []string, allowedPathsPrefixes []string) *TokenAuthHandler {
	h := &TokenAuthHandler{
		token:                token,
		allowedPaths:         make(map[string]bool, len(allowedPaths)),
		allowedPathsPrefixes: allowedPathsPrefixes,
	}
	for _, p := range allowedPaths {
		h.allowedPaths[p] = true
	}
	return h
}

func (h *TokenAuthHandler) pathIsAlwaysAllowed(path string) bool {
	if h.allowedPaths[path] {
		return true
	}
	for _, prefix := range h.allowedPathsPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (h *TokenAuthHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.token == "" || h.pathIsAlwaysAllowed(r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := r.Header.Get(TokenHeader)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			if subtle.ConstantTimeCompare([]byte(authToken), []byte(h.token)) != 1 {
				reqIp := pkg.ClientIP(r)
				log.Warnf("[invalid token] [auth middleware] unauthorized %s => %s", reqIp, r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-auth-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
