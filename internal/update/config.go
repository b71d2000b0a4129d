package update

import (
	"os"
	"strings"
)

// Store backends selectable through TIDYMIND_STORE.
const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
	StoreMemory = "memory"
)

type RuntimeConfig struct {
	StoreBackend string
	DBPath       string
	DataDir      string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		StoreBackend: StoreSQLite,
		DBPath:       "tidymind.db",
		DataDir:      ".tidymind",
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("TIDYMIND_STORE"); ok {
		switch strings.ToLower(v) {
		case StoreSQLite, StoreFile, StoreMemory:
			cfg.StoreBackend = strings.ToLower(v)
		}
	}
	if v, ok := getEnvString("TIDYMIND_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("TIDYMIND_DATA_DIR"); ok {
		cfg.DataDir = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}
