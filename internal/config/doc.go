// Package config loads the LetHimCook client configuration from
// ~/.config/lethimcook/config.toml (overridable via -config). A missing file
// is not an error; defaults point at a local server on 127.0.0.1:18080.
package config
