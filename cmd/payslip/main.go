package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"payslipcalc/internal/app/console"
	"payslipcalc/internal/platform/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := cfg.ValidateConsole(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := console.New(os.Stdin, os.Stdout, console.Options{
		ClearScreen: cfg.ConsoleClearScreen,
		ExitDelay:   cfg.ConsoleExitDelay,
	})
	if err := c.Run(ctx); err != nil {
		log.Fatalf("payslip console failed: %v", err)
	}
}
