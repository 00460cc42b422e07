package ops

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names understood by the binaries.
const (
	EnvPGDSN      = "NANOTICK_PG_DSN"
	EnvArchiveDir = "NANOTICK_ARCHIVE_DIR"
	EnvPyroscope  = "NANOTICK_PYROSCOPE_ADDR"
)

// Env carries the optional integrations resolved from the process
// environment. Empty fields disable the integration.
type Env struct {
	PGDSN         string
	ArchiveDir    string
	PyroscopeAddr string
}

// LoadEnv reads the process environment, merging a .env file when one
// exists in the working directory.
func LoadEnv() Env {
	_ = godotenv.Load()
	return Env{
		PGDSN:         os.Getenv(EnvPGDSN),
		ArchiveDir:    os.Getenv(EnvArchiveDir),
		PyroscopeAddr: os.Getenv(EnvPyroscope),
	}
}
