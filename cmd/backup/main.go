// Command backup runs the backup wallet replica: the Ledger Engine exposed
// over gRPC, with no HTTP adapter of its own.
package main

import (
	"fmt"
	"os"

	"ftwallet/internal/pkg/components"
)

func main() {
	container, err := components.NewBackupContainer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "backup: failed to initialize: %v\n", err)
		os.Exit(1)
	}

	if err := container.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "backup: server error: %v\n", err)
		os.Exit(1)
	}
}
