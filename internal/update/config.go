package update

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/questdo/questdo/internal/model"
)

type RuntimeConfig struct {
	DataDir              string
	StoreBackend         string
	LogLevel             string
	LogPath              string
	SoundEnabled         bool
	NotificationsAllowed bool
	DefaultSort          model.SortMode
}

func DefaultRuntimeConfig() RuntimeConfig {
	dataDir := defaultDataDir()
	return RuntimeConfig{
		DataDir:      dataDir,
		StoreBackend: "bolt",
		LogLevel:     "info",
		LogPath:      filepath.Join(dataDir, "questdo.log"),
		SoundEnabled: true,
		DefaultSort:  model.SortCreatedTime,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("QUESTDO_DATA_DIR")); v != "" {
		cfg.DataDir = v
		cfg.LogPath = filepath.Join(v, "questdo.log")
	}
	if v := strings.TrimSpace(strings.ToLower(os.Getenv("QUESTDO_STORE_BACKEND"))); v == "bolt" || v == "sqlite" {
		cfg.StoreBackend = v
	}
	if v := strings.TrimSpace(os.Getenv("QUESTDO_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("QUESTDO_LOG_FILE")); v != "" {
		cfg.LogPath = v
	}
	if v, ok := getEnvBool("QUESTDO_SOUND"); ok {
		cfg.SoundEnabled = v
	}
	if v, ok := getEnvBool("QUESTDO_NOTIFICATIONS"); ok {
		cfg.NotificationsAllowed = v
	}
	switch strings.TrimSpace(strings.ToLower(os.Getenv("QUESTDO_DEFAULT_SORT"))) {
	case "created":
		cfg.DefaultSort = model.SortCreatedTime
	case "due":
		cfg.DefaultSort = model.SortDueDate
	case "name":
		cfg.DefaultSort = model.SortTaskName
	}
	return cfg
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".questdo"
	}
	return filepath.Join(base, "questdo")
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
