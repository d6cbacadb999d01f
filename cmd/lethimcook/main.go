package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lethimcook/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	server := flag.String("server", "", "override server host:port (optional)")
	skipLogin := flag.Bool("skip-login", false, "enter as guest without logging in")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Server:     *server,
		SkipLogin:  *skipLogin,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "lethimcook: %v\n", err)
		return 1
	}
	return 0
}
