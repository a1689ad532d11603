// Command hederarest calls the ledger REST API from the shell.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashgraph-online/hedera-rest-sdk-go/cmd/hederarest/cmd"
)

// Set by -ldflags at build time.
var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx, version); err != nil {
		os.Exit(1)
	}
}
