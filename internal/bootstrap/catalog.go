package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/FarmCalc_Go/internal/catalog"
	"github.com/osse101/FarmCalc_Go/internal/config"
)

// LoadCatalog loads the crop catalog from CATALOG_PATH, or the embedded one when unset
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	var (
		cat *catalog.Catalog
		err error
	)
	source := cfg.CatalogPath
	if source == "" {
		source = "embedded"
		cat, err = catalog.Default()
	} else {
		cat, err = catalog.Load(cfg.CatalogPath)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	slog.Info(LogMsgCatalogLoaded, "source", source, "version", cat.Version(), "crops", cat.Len())
	return cat, nil
}
