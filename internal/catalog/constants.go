package catalog

// Embedded resources
const (
	DefaultCatalogFile = "data/crops.yaml"
	SchemaFile         = "data/crops.schema.json"
	SchemaName         = "crops.schema.json"
)

// Error messages
const (
	ErrMsgReadCatalogFailed   = "failed to read crop catalog %s: %w"
	ErrMsgParseCatalogFailed  = "failed to parse crop catalog: %w"
	ErrMsgSchemaCatalogFailed = "crop catalog does not match schema: %w"
	ErrMsgLoadSchemaFailed    = "failed to load crop catalog schema: %w"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Crop catalog loaded"
)
