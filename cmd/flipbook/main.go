package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/flipbook/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	bookPath := flag.String("book", "", "book manifest or directory (optional, defaults to the demo book)")
	strategy := flag.String("strategy", "", "input strategy: wheel or scroll (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		BookPath:   *bookPath,
		Strategy:   *strategy,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "flipbook: %v\n", err)
		return 1
	}
	return 0
}
