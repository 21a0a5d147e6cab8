// Command primary runs the primary wallet replica: the HTTP adapter, the
// Ledger Engine, the Replication Client and the Failover Monitor.
package main

import (
	"fmt"
	"os"

	"ftwallet/internal/pkg/components"
)

func main() {
	container, err := components.GetPrimaryInstance()
	if err != nil {
		fmt.Fprintf(os.Stderr, "primary: failed to initialize: %v\n", err)
		os.Exit(1)
	}

	if err := container.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "primary: server error: %v\n", err)
		os.Exit(1)
	}
}
