//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"astraea/app"
	"astraea/astraeaos/services/shell"
	"astraea/hal"
	"astraea/internal/config"
)

func main() {
	var (
		cfgPath  string
		headless bool
		window   bool
		hz       float64
		seed     uint64
		logPath  string
	)
	flag.StringVar(&cfgPath, "config", "", "Path to a TOML config file.")
	flag.BoolVar(&headless, "headless", false, "Read stdin and write plain text; no raw mode or escape sequences.")
	flag.BoolVar(&window, "window", false, "Open a desktop window instead of using the terminal.")
	flag.Float64Var(&hz, "hz", 0, "Timer rate in Hz (overrides config; 0 = config value).")
	flag.Uint64Var(&seed, "seed", 0, "RNG seed (overrides config; 0 = config value).")
	flag.StringVar(&logPath, "log", "", "Kernel log file (overrides config).")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if hz != 0 {
		cfg.TimerHz = hz
	}
	if seed != 0 {
		cfg.RNGSeed = seed
	}
	if logPath != "" {
		cfg.LogFile = logPath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	hostCfg := hal.HostConfig{Headless: headless, LogPath: cfg.LogFile, Seed: cfg.RNGSeed}
	run := func(ctx context.Context, h hal.HAL) error {
		return app.Run(ctx, h, cfg)
	}

	if window {
		err = hal.RunWindow(ctx, hostCfg, run)
	} else {
		err = hal.RunTerminal(ctx, hostCfg, run)
	}
	if err == nil || errors.Is(err, shell.ErrReboot) || errors.Is(err, context.Canceled) {
		return
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
