package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/osse101/FarmCalc_Go/internal/logger"
	"github.com/osse101/FarmCalc_Go/internal/planner"
	"github.com/osse101/FarmCalc_Go/internal/preferences"
)

// SetPriceRequest carries a market price. Price may be a JSON number or free-form text.
type SetPriceRequest struct {
	Price json.RawMessage `json:"price" validate:"required"`
}

// SetPriceResponse echoes the price that was stored
type SetPriceResponse struct {
	Message string  `json:"message"`
	Crop    string  `json:"crop"`
	Price   float64 `json:"price"`
}

// PricesResponse lists the caller's price per crop
type PricesResponse struct {
	Prices map[string]float64 `json:"prices"`
}

var errNotAPrice = errors.New("price is neither a number nor text")

// parsePrice coerces the raw price the same way typed-in text is coerced:
// empty or non-numeric becomes 0 and negatives clamp to 0
func parsePrice(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, err
		}
		return preferences.CoerceNumber(text), nil
	}
	if len(raw) > 0 && (raw[0] == '{' || raw[0] == '[') {
		return 0, errNotAPrice
	}
	return preferences.CoerceNumber(string(raw)), nil
}

// HandleGetPrices returns the caller's price for every crop
// @Summary Get prices
// @Tags prices
// @Produce json
// @Param X-Profile-ID header string false "Profile"
// @Success 200 {object} PricesResponse
// @Router /api/v1/prices [get]
func HandleGetPrices(svc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefs, err := svc.Preferences(r.Context(), ProfileFromRequest(r))
		if err != nil {
			respondServiceError(w, r, ErrMsgGetPricesFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, PricesResponse{Prices: prefs.Prices})
	}
}

// HandleSetPrice stores the market price of one crop
// @Summary Set crop price
// @Tags prices
// @Accept json
// @Produce json
// @Param name path string true "Crop name"
// @Param X-Profile-ID header string false "Profile"
// @Param request body SetPriceRequest true "Price"
// @Success 200 {object} SetPriceResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/prices/{name} [put]
func HandleSetPrice(svc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := PathParam(r, w, "name", ErrMsgMissingCropName)
		if !ok {
			return
		}

		var req SetPriceRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set price"); err != nil {
			return
		}
		price, err := parsePrice(req.Price)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidPrice)
			return
		}

		profile := ProfileFromRequest(r)
		cropName, err := svc.SetPrice(r.Context(), profile, name, price)
		if err != nil {
			respondServiceError(w, r, ErrMsgSetPriceFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Price updated", "profile", profile, "crop", cropName, "price", price)
		respondJSON(w, http.StatusOK, SetPriceResponse{
			Message: MsgPriceUpdatedSuccess,
			Crop:    cropName,
			Price:   price,
		})
	}
}
