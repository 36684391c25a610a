package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cocosip/splash-codec/cmd/splashctl/cmd"
)

var GitSHA string = "NA"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cmd.NewRoot(ctx, GitSHA).Execute(); err != nil {
		os.Exit(1)
	}
}
