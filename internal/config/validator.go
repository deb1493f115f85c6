package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout the application expects
const ExpectedEnvSchemaVersion = "1.0"

// driverEnvVars lists the variables a store driver cannot run without
var driverEnvVars = map[string][]string{
	StoreDriverPostgres: {"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
	StoreDriverSQLite:   {"SQLITE_PATH"},
}

// ValidateEnv checks the schema version, when one is declared, and the variables the selected store needs
func ValidateEnv() error {
	if schemaVersion := os.Getenv("ENV_SCHEMA_VERSION"); schemaVersion != "" && schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	driver := strings.ToLower(getEnv("STORE_DRIVER", DefaultStoreDriver))
	var missing []string
	for _, envVar := range driverEnvVars[driver] {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables for STORE_DRIVER=%s: %s", driver, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and reports non-fatal problems such as example values
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if os.Getenv("ENV_SCHEMA_VERSION") == "" {
		warnings = append(warnings, fmt.Sprintf("ENV_SCHEMA_VERSION is not set (expected %s)", ExpectedEnvSchemaVersion))
	}
	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if os.Getenv("API_KEY") == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if strings.ToLower(getEnv("STORE_DRIVER", DefaultStoreDriver)) == StoreDriverMemory {
		warnings = append(warnings, "STORE_DRIVER=memory keeps preferences only until restart")
	}

	return warnings, nil
}
