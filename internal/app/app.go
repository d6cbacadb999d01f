package app

import (
	"context"
	"fmt"

	"lethimcook/internal/api"
	"lethimcook/internal/config"
	"lethimcook/internal/prefs"
	"lethimcook/internal/state"
	"lethimcook/internal/ui"
)

// Options configure the LetHimCook client.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/lethimcook/prefs.toml
	Server     string // overrides the configured server host:port
	SkipLogin  bool   // overrides the configured skip_login switch
}

// Run boots the client TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Server != "" {
		cfg.Server = opts.Server
	}
	if opts.SkipLogin {
		cfg.SkipLogin = true
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := api.NewClient(cfg.Server)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := &state.Store{}

	// Probe once up front so the login view has a reading on first paint,
	// then keep probing in the background.
	probe(ctx, store, client)
	StartProber(ctx, store, client, defaultProbeInterval)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Status:    store,
		SkipLogin: cfg.SkipLogin,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
