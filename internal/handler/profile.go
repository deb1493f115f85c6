package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/osse101/FarmCalc_Go/internal/logger"
	"github.com/osse101/FarmCalc_Go/internal/planner"
)

const (
	// HeaderProfileID selects whose preferences a request reads and writes
	HeaderProfileID = "X-Profile-ID"
	// QueryProfileID is accepted where clients cannot set headers, e.g. browser websockets
	QueryProfileID = "profile"
	// DefaultProfile is used when the caller names none
	DefaultProfile = "default"
)

type profileKey struct{}

// ProfileMiddleware resolves the caller's profile and rejects malformed ones
func ProfileMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profile := strings.TrimSpace(r.Header.Get(HeaderProfileID))
		if profile == "" {
			profile = strings.TrimSpace(r.URL.Query().Get(QueryProfileID))
		}
		if profile == "" {
			profile = DefaultProfile
		}

		if err := planner.ValidateProfile(profile); err != nil {
			logger.FromContext(r.Context()).Warn("Rejected request with invalid profile", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidProfile)
			return
		}

		ctx := context.WithValue(r.Context(), profileKey{}, profile)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ProfileFromRequest returns the profile resolved by ProfileMiddleware
func ProfileFromRequest(r *http.Request) string {
	if profile, ok := r.Context().Value(profileKey{}).(string); ok {
		return profile
	}
	return DefaultProfile
}
