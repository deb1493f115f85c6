package discord

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FarmCalc_Go/internal/domain"
	"github.com/osse101/FarmCalc_Go/internal/handler"
)

func TestAPIClient_SendsProfileAndAPIKey(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("GET /api/v1/farms", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "discord-123", r.Header.Get(handler.HeaderProfileID))
		assert.Equal(t, "test-api-key", r.Header.Get("X-API-Key"))
		WriteJSON(w, handler.FarmsResponse{
			Profile: "discord-123",
			Count:   1,
			Crops:   []domain.RankedCrop{{Position: 1, Crop: domain.Crop{Name: "Wheat"}, Eligible: true}},
		})
	})

	ranked, err := tc.APIClient.GetRanking(context.Background(), "discord-123")
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "Wheat", ranked[0].Crop.Name)
}

func TestAPIClient_RetriesServerErrors(t *testing.T) {
	tc := SetupTestContext(t)
	var calls atomic.Int32
	tc.Mux.HandleFunc("GET /api/v1/catalog", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			WriteError(w, http.StatusServiceUnavailable, "store down")
			return
		}
		WriteJSON(w, handler.CatalogResponse{Count: 1, Crops: []domain.Crop{{Name: "Corn"}}})
	})

	crops, err := tc.APIClient.GetCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, "Corn", crops[0].Name)
}

func TestAPIClient_GivesUpAfterMaxRetries(t *testing.T) {
	tc := SetupTestContext(t)
	var calls atomic.Int32
	tc.Mux.HandleFunc("GET /api/v1/farms", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		WriteError(w, http.StatusInternalServerError, "boom")
	})

	_, err := tc.APIClient.GetRanking(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max retries exceeded")
	assert.Equal(t, int32(maxRetries+1), calls.Load())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
}

func TestAPIClient_ClientErrorsAreNotRetried(t *testing.T) {
	tc := SetupTestContext(t)
	var calls atomic.Int32
	tc.Mux.HandleFunc("GET /api/v1/farms/{name}", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		WriteError(w, http.StatusNotFound, `crop "Wheet" not found, did you mean "Wheat"?`)
	})

	_, err := tc.APIClient.GetFarm(context.Background(), "p", "Wheet")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Contains(t, apiErr.Message, "did you mean")
}

func TestAPIClient_GetFarmDecodesROI(t *testing.T) {
	tests := []struct {
		name        string
		roi         float64
		wantDefined bool
	}{
		{name: "finite roi", roi: 42.5, wantDefined: true},
		{name: "free planting", roi: math.Inf(1), wantDefined: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := SetupTestContext(t)
			tc.Mux.HandleFunc("GET /api/v1/farms/{name}", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Sweet Potato", r.PathValue("name"))
				detail := domain.CropDetail{
					Crop:               domain.Crop{Name: "Sweet Potato"},
					PlotCount:          79,
					ReturnOnInvestment: tt.roi,
				}
				body, err := json.Marshal(detail)
				require.NoError(t, err)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write(body)
			})

			detail, err := tc.APIClient.GetFarm(context.Background(), "p", "Sweet Potato")
			require.NoError(t, err)
			assert.Equal(t, 79, detail.PlotCount)
			assert.Equal(t, tt.wantDefined, detail.ROIDefined)
			if tt.wantDefined {
				require.NotNil(t, detail.ROI)
				assert.InDelta(t, tt.roi, *detail.ROI, 1e-9)
			} else {
				assert.Nil(t, detail.ROI)
			}
		})
	}
}

func TestAPIClient_UpdatePreferencesUnwrapsData(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("PATCH /api/v1/preferences", func(w http.ResponseWriter, r *http.Request) {
		var update domain.PreferencesUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
		require.NotNil(t, update.CharacterLevel)
		assert.Nil(t, update.AvailableEffort)
		WriteJSON(w, handler.DataResponse{
			Message: handler.MsgPreferencesUpdatedSuccess,
			Data: domain.Preferences{
				AvailableEffort: 5000,
				CharacterLevel:  *update.CharacterLevel,
				LandSize:        domain.LandSizeMedium,
			},
		})
	})

	level := 12
	prefs, err := tc.APIClient.UpdatePreferences(context.Background(), "p", domain.PreferencesUpdate{CharacterLevel: &level})
	require.NoError(t, err)
	assert.Equal(t, 12, prefs.CharacterLevel)
	assert.Equal(t, domain.LandSizeMedium, prefs.LandSize)
}

func TestAPIClient_SetPriceSendsText(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Mux.HandleFunc("PUT /api/v1/prices/{name}", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "12.5", body["price"])
		WriteJSON(w, handler.SetPriceResponse{Message: "ok", Crop: r.PathValue("name"), Price: 12.5})
	})

	resp, err := tc.APIClient.SetPrice(context.Background(), "p", "Wheat", "12.5")
	require.NoError(t, err)
	assert.Equal(t, "Wheat", resp.Crop)
	assert.InDelta(t, 12.5, resp.Price, 1e-9)
}

func TestAPIClient_Healthy(t *testing.T) {
	tc := SetupTestContext(t)
	assert.False(t, tc.APIClient.Healthy(context.Background()))

	tc.Mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, map[string]string{"status": "ok"})
	})
	assert.True(t, tc.APIClient.Healthy(context.Background()))
}
