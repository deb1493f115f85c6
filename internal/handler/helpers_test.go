package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FarmCalc_Go/internal/domain"
)

// newTestRouter mounts the API the way the server does, minus the outer middleware
func newTestRouter(svc *MockPlannerService) http.Handler {
	r := chi.NewRouter()
	r.Use(ProfileMiddleware)
	r.Get("/catalog", HandleGetCatalog(svc))
	r.Get("/farms", HandleListFarms(svc))
	r.Get("/farms/{name}", HandleGetFarm(svc))
	r.Get("/preferences", HandleGetPreferences(svc))
	r.Patch("/preferences", HandleUpdatePreferences(svc))
	r.Get("/prices", HandleGetPrices(svc))
	r.Put("/prices/{name}", HandleSetPrice(svc))
	return r
}

func doRequest(t *testing.T, h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func testPreferences() domain.Preferences {
	return domain.Preferences{
		AvailableEffort: 5000,
		CharacterLevel:  50,
		LandSize:        domain.LandSizeMedium,
		Prices:          map[string]float64{"Wheat": 9, "Pumpkin": 40},
	}
}

func ptr[T any](v T) *T {
	return &v
}
