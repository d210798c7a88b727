package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

type Kind string

const (
	KindSQLite Kind = "sqlite"
	KindFile   Kind = "file"
	KindMemory Kind = "memory"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindSQLite, KindFile, KindMemory:
		return true
	default:
		return false
	}
}

const (
	sqliteFileName = "daytally.db"
	jsonFileName   = "daytally.json"
)

// OpenBackend opens the named backend under dataDir.
func OpenBackend(kind Kind, dataDir string) (Backend, error) {
	switch kind {
	case KindMemory:
		return NewMemoryStore(), nil
	case KindFile:
		return NewFileStore(filepath.Join(dataDir, jsonFileName))
	case KindSQLite, "":
		return OpenSQLite(filepath.Join(dataDir, sqliteFileName))
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", kind)
	}
}

// ResolveDataDir returns override when set, else the OS default data dir.
func ResolveDataDir(override string) (string, error) {
	if custom := strings.TrimSpace(override); custom != "" {
		return custom, nil
	}
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return filepath.Join(appdata, "daytally"), nil
		}
		return "", errors.New("APPDATA not set")
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			return filepath.Join(home, "Library", "Application Support", "daytally"), nil
		}
		return "", errors.New("home directory not found")
	default:
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			return filepath.Join(home, ".local", "share", "daytally"), nil
		}
		return "", errors.New("home directory not found")
	}
}
