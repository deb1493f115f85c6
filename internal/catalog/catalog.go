package catalog

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/FarmCalc_Go/internal/domain"
	"github.com/osse101/FarmCalc_Go/internal/validation"
)

//go:embed data/crops.yaml data/crops.schema.json
var files embed.FS

// Catalog is the read-only list of crops together with their default prices.
// Crop order is the file order and is used as the ranking tie-break.
type Catalog struct {
	version       int
	crops         []domain.Crop
	defaultPrices map[string]float64
	index         map[string]int
}

type fileFormat struct {
	Version int     `yaml:"version"`
	Crops   []entry `yaml:"crops"`
}

type entry struct {
	domain.Crop  `yaml:",inline"`
	DefaultPrice float64 `yaml:"default_price"`
}

// Default returns the catalog embedded in the binary
func Default() (*Catalog, error) {
	data, err := files.ReadFile(DefaultCatalogFile)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, DefaultCatalogFile, err)
	}
	return Parse(data)
}

// Load reads a catalog from path, or the embedded one when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, path, err)
	}
	return Parse(data)
}

// Parse decodes YAML catalog data, checks it against the schema and the crop invariants
func Parse(data []byte) (*Catalog, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}

	v, err := schemaValidator()
	if err != nil {
		return nil, err
	}
	if err := v.ValidateValue(SchemaName, raw); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaCatalogFailed, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err))
	}

	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
	}

	c, err := build(f)
	if err != nil {
		return nil, err
	}

	slog.Default().Debug(LogMsgCatalogLoaded, "version", c.version, "crops", len(c.crops))
	return c, nil
}

func schemaValidator() (validation.SchemaValidator, error) {
	schema, err := files.ReadFile(SchemaFile)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadSchemaFailed, err)
	}
	v := validation.NewSchemaValidator()
	if err := v.RegisterSchema(SchemaName, schema); err != nil {
		return nil, fmt.Errorf(ErrMsgLoadSchemaFailed, err)
	}
	return v, nil
}

func build(f fileFormat) (*Catalog, error) {
	c := &Catalog{
		version:       f.Version,
		crops:         make([]domain.Crop, 0, len(f.Crops)),
		defaultPrices: make(map[string]float64, len(f.Crops)),
		index:         make(map[string]int, len(f.Crops)),
	}
	for _, e := range f.Crops {
		e.Name = strings.TrimSpace(e.Name)
		if err := e.Crop.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
		}
		key := normalize(e.Name)
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf("%w: %w: %s", domain.ErrInvalidCatalog, domain.ErrDuplicateCrop, e.Name)
		}
		c.index[key] = len(c.crops)
		c.crops = append(c.crops, e.Crop)
		c.defaultPrices[e.Name] = e.DefaultPrice
	}
	return c, nil
}

// New builds a catalog from crops already in memory. Missing default prices are zero.
func New(crops []domain.Crop, defaultPrices map[string]float64) (*Catalog, error) {
	f := fileFormat{Version: 1, Crops: make([]entry, len(crops))}
	for i, c := range crops {
		f.Crops[i] = entry{Crop: c, DefaultPrice: defaultPrices[c.Name]}
	}
	return build(f)
}

// Version is the catalog data version
func (c *Catalog) Version() int {
	return c.version
}

// Crops returns the crops in catalog order. The slice is a copy.
func (c *Catalog) Crops() []domain.Crop {
	out := make([]domain.Crop, len(c.crops))
	copy(out, c.crops)
	return out
}

// Names returns crop names in catalog order
func (c *Catalog) Names() []string {
	out := make([]string, len(c.crops))
	for i, crop := range c.crops {
		out[i] = crop.Name
	}
	return out
}

// Len is the number of crops
func (c *Catalog) Len() int {
	return len(c.crops)
}

// Lookup finds a crop by name, ignoring case
func (c *Catalog) Lookup(name string) (domain.Crop, bool) {
	i, ok := c.index[normalize(name)]
	if !ok {
		return domain.Crop{}, false
	}
	return c.crops[i], true
}

// DefaultPrice returns the seeded price of a crop
func (c *Catalog) DefaultPrice(name string) float64 {
	return c.defaultPrices[name]
}

// DefaultPrices returns a copy of the default price table
func (c *Catalog) DefaultPrices() map[string]float64 {
	out := make(map[string]float64, len(c.defaultPrices))
	for k, v := range c.defaultPrices {
		out[k] = v
	}
	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
