package configs

import (
	"fmt"
	"strings"
)

// Storage backends.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Storage selects where campaigns are kept. "memory" keeps everything in
// process and is meant for local runs; state is lost on restart.
type Storage struct {
	Backend string `env:"BACKEND" envDefault:"postgres"`
	// Seed creates demo campaigns on startup. Only honoured by main.
	Seed bool `env:"SEED" envDefault:"false"`
}

// Normalized returns the lower-cased backend name or an error for unknown
// backends.
func (c Storage) Normalized() (string, error) {
	switch b := strings.ToLower(c.Backend); b {
	case StoragePostgres, StorageMemory:
		return b, nil
	default:
		return "", fmt.Errorf("unknown storage backend %q", c.Backend)
	}
}
