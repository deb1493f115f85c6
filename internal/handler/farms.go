package handler

import (
	"net/http"

	"github.com/osse101/FarmCalc_Go/internal/domain"
	"github.com/osse101/FarmCalc_Go/internal/planner"
)

// FarmsResponse is the ranked crop list of a profile
type FarmsResponse struct {
	Profile string              `json:"profile"`
	Count   int                 `json:"count"`
	Crops   []domain.RankedCrop `json:"crops"`
}

// HandleListFarms returns every crop ranked for the caller's preferences
// @Summary Ranked crops
// @Description Eligible crops first, then by profit per hour. Ties keep catalog order.
// @Tags farms
// @Produce json
// @Param X-Profile-ID header string false "Profile"
// @Param limit query int false "Return only the first N crops"
// @Success 200 {object} FarmsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/farms [get]
func HandleListFarms(svc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile := ProfileFromRequest(r)

		ranked, err := svc.Ranking(r.Context(), profile)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetRankingFailed, err)
			return
		}
		if limit := getQueryInt(r, "limit", 0); limit > 0 && limit < len(ranked) {
			ranked = ranked[:limit]
		}

		respondJSON(w, http.StatusOK, FarmsResponse{
			Profile: profile,
			Count:   len(ranked),
			Crops:   ranked,
		})
	}
}

// HandleGetFarm returns the full cost and revenue breakdown of one crop
// @Summary Crop detail
// @Description return_on_investment is null and roi_defined false when the planting cost is zero
// @Tags farms
// @Produce json
// @Param name path string true "Crop name"
// @Param X-Profile-ID header string false "Profile"
// @Success 200 {object} domain.CropDetail
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/farms/{name} [get]
func HandleGetFarm(svc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := PathParam(r, w, "name", ErrMsgMissingCropName)
		if !ok {
			return
		}

		detail, err := svc.Detail(r.Context(), ProfileFromRequest(r), name)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetDetailFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, detail)
	}
}
