package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/studio-wiz/iconmaker/internal/app"
	"github.com/studio-wiz/iconmaker/internal/config"
	"golang.org/x/term"
)

const debugLogPath = "./iconmaker-debug.log"

func main() {
	os.Exit(run())
}

func run() int {
	if err := config.LoadDotEnv(config.DotEnvFile); err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 2
	}
	defaults, err := config.FromEnv(os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 2
	}
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:], defaults)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		return 2
	}

	// Best-effort: send all output, panics included, to a file.
	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if cfg.Debug {
		f, err := os.OpenFile(debugLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled, out=%s platforms=%v font=%s", cfg.OutDir, cfg.Platforms, cfg.FontName)
		} else {
			fmt.Fprintln(os.Stderr, "debug log open error:", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, os.Stdout)
	a.Logger = logger
	a.Decorate = term.IsTerminal(int(os.Stdout.Fd()))

	if err := a.Run(ctx); err != nil {
		prefix := ""
		if term.IsTerminal(int(os.Stderr.Fd())) {
			prefix = "❌ "
		}
		fmt.Fprintf(os.Stderr, "%sError creating icons: %v\n", prefix, err)
		fmt.Fprintf(os.Stderr, "Make sure %s is writable and every -platforms entry is one of android, ios, windows, web.\n", cfg.OutDir)
		return 1
	}
	return 0
}
