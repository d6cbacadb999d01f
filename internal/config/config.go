package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields the LetHimCook client reads at startup.
type Config struct {
	// Server is the host:port of the LetHimCook HTTP service.
	Server string
	// SkipLogin mounts the authenticated shell directly as "Guest" instead
	// of starting at the login view. Off unless asked for explicitly.
	SkipLogin bool
}

const (
	defaultConfigPath = "~/.config/lethimcook/config.toml"
	defaultServer     = "127.0.0.1:18080"
)

// Load locates and parses the client config, falling back to defaults when
// the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Server: defaultServer}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Server    string `toml:"server"`
		SkipLogin bool   `toml:"skip_login"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Server = strings.TrimSpace(raw.Server)
	if cfg.Server == "" {
		cfg.Server = defaultServer
	}
	cfg.SkipLogin = raw.SkipLogin

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
