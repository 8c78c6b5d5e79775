package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/refreshable/cmd/refreshdemo/internal/config"
	"github.com/go-drift/refreshable/cmd/refreshdemo/internal/sim"
)

func init() {
	RegisterCommand(&Command{
		Name:  "simulate",
		Short: "Replay a scenario file",
		Long: `Replay the gestures of a scenario file against an in-memory scroll view
and print every state transition, callback and geometry change.

Animations run on a fake clock, so output is deterministic. Step kinds:
drag, release, scroll, pump, settle, start_refresh, stop_refresh,
start_load_more, stop_load_more, content_height, enable_load_more.`,
		Usage: "refreshdemo simulate <scenario.yaml>",
		Run:   runSimulate,
	})
}

func runSimulate(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("scenario file is required\n\nUsage: refreshdemo simulate <scenario.yaml>")
	}

	scenario, err := config.Load(args[0])
	if err != nil {
		return err
	}

	logger, err := newLogger(scenario.Log.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	if scenario.Name != "" {
		fmt.Printf("Scenario: %s\n\n", scenario.Name)
	}

	res, err := sim.NewRunner(scenario, os.Stdout, logger).Run()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Refresh triggers:   %d\n", res.RefreshTriggers)
	fmt.Printf("Load-more triggers: %d\n", res.LoadMoreTriggers)
	fmt.Printf("Final offset:       %g\n", res.FinalOffset)
	fmt.Printf("Final inset:        top %g, bottom %g\n", res.FinalInset.Top, res.FinalInset.Bottom)
	return nil
}
