package handler

import (
	"net/http"

	"github.com/osse101/FarmCalc_Go/internal/domain"
	"github.com/osse101/FarmCalc_Go/internal/planner"
)

// CatalogResponse lists the crop definitions in catalog order
type CatalogResponse struct {
	Count int           `json:"count"`
	Crops []domain.Crop `json:"crops"`
}

// HandleGetCatalog returns the static crop catalog
// @Summary Crop catalog
// @Tags farms
// @Produce json
// @Success 200 {object} CatalogResponse
// @Router /api/v1/catalog [get]
func HandleGetCatalog(svc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		crops := svc.Catalog()
		respondJSON(w, http.StatusOK, CatalogResponse{Count: len(crops), Crops: crops})
	}
}
