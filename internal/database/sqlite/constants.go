package sqlite

// DriverName is the database/sql driver registered by modernc.org/sqlite
const DriverName = "sqlite"

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

var pragmas = []string{
	"PRAGMA journal_mode=WAL;",
	"PRAGMA synchronous=NORMAL;",
	"PRAGMA busy_timeout=5000;",
}

// Error messages
const (
	ErrMsgEmptyPath       = "empty sqlite path"
	ErrMsgCreateDirFailed = "failed to create sqlite directory: %w"
	ErrMsgOpenFailed      = "failed to open sqlite database %s: %w"
	ErrMsgPragmaFailed    = "failed to apply %s: %w"
)
