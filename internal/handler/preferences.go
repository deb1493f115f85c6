package handler

import (
	"net/http"

	"github.com/osse101/FarmCalc_Go/internal/domain"
	"github.com/osse101/FarmCalc_Go/internal/logger"
	"github.com/osse101/FarmCalc_Go/internal/planner"
)

// HandleGetPreferences returns the caller's stored inputs
// @Summary Get preferences
// @Tags preferences
// @Produce json
// @Param X-Profile-ID header string false "Profile"
// @Success 200 {object} domain.Preferences
// @Router /api/v1/preferences [get]
func HandleGetPreferences(svc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefs, err := svc.Preferences(r.Context(), ProfileFromRequest(r))
		if err != nil {
			respondServiceError(w, r, ErrMsgGetPreferencesFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, prefs)
	}
}

// HandleUpdatePreferences applies a partial update. Absent fields keep their value.
// @Summary Update preferences
// @Tags preferences
// @Accept json
// @Produce json
// @Param X-Profile-ID header string false "Profile"
// @Param request body domain.PreferencesUpdate true "Fields to change"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/preferences [patch]
func HandleUpdatePreferences(svc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.PreferencesUpdate
		if err := DecodeAndValidateRequest(r, w, &req, "Update preferences"); err != nil {
			return
		}
		if req.Empty() {
			respondError(w, http.StatusBadRequest, ErrMsgEmptyUpdate)
			return
		}
		if req.LandSize != nil {
			// the validator already accepted it, this only normalises case
			size, _ := domain.ParseLandSize(string(*req.LandSize))
			req.LandSize = &size
		}

		profile := ProfileFromRequest(r)
		prefs, err := svc.UpdatePreferences(r.Context(), profile, req)
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdatePreferencesFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Preferences updated", "profile", profile)
		respondJSON(w, http.StatusOK, DataResponse{
			Message: MsgPreferencesUpdatedSuccess,
			Data:    prefs,
		})
	}
}
