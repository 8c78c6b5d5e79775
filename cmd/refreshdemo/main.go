// Command refreshdemo replays pull-to-refresh and load-more scenarios.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/refreshable/cmd/refreshdemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
