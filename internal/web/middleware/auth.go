// Package middleware provides HTTP middleware for the web server.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"opscalendar/internal/config"
)

type contextKey string

// emailKey stores the authenticated caller's email in the request context.
const emailKey contextKey = "caller_email"

// EmailDomainAuth returns middleware that authorizes callers by the domain
// of their email address. The email arrives in the configured identity
// header, set by the auth proxy in front of the service; the service itself
// never handles credentials.
//
// A missing identity is a 401, an identity whose domain is not on the
// allow-list is a 403 — both distinct from data errors so the front end can
// show an access-denied state.
func EmailDomainAuth(cfg *config.AuthConfig) func(http.Handler) http.Handler {
	// Normalize the allow-list once at startup
	domains := make([]string, 0, len(cfg.AllowedDomains))
	for _, d := range cfg.AllowedDomains {
		d = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(d, "@")))
		if d != "" {
			domains = append(domains, d)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			email := strings.TrimSpace(r.Header.Get(cfg.IdentityHeader))
			if email == "" {
				slog.Warn("auth: no caller identity",
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
				)
				w.Header().Set("Content-Type", "application/json")
				http.Error(w, `{"error":"authentication required","code":"AUTH_NO_IDENTITY"}`, http.StatusUnauthorized)
				return
			}

			if !domainAllowed(email, domains) {
				slog.Warn("auth: email domain not allowed",
					"path", r.URL.Path,
					"email", email,
					"remote_addr", r.RemoteAddr,
				)
				w.Header().Set("Content-Type", "application/json")
				http.Error(w, `{"error":"access denied","code":"AUTH_DOMAIN_DENIED"}`, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), emailKey, email)))
		})
	}
}

// domainAllowed checks the email's domain against the allow-list. A listed
// domain also covers its subdomains.
func domainAllowed(email string, domains []string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := strings.ToLower(email[at+1:])

	for _, allowed := range domains {
		if domain == allowed || strings.HasSuffix(domain, "."+allowed) {
			return true
		}
	}
	return false
}

// CallerEmail returns the authenticated caller's email, or "" when auth is
// disabled or the context carries none.
func CallerEmail(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}
