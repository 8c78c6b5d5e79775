// Package cmd implements the refreshdemo subcommands (simulate, spinner) and
// the dispatcher that routes to them.
package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/zap"

	"github.com/go-drift/refreshable/pkg/errors"
)

// Set with -ldflags "-X" at release time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command is one refreshdemo subcommand.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

const overview = `refreshdemo drives the refreshable controllers against an in-memory
scroll view. Scenarios are YAML files describing the view, the attached
behaviors and the gestures to replay.

Use "refreshdemo <command> --help" for more information about a command.`

var (
	commands = map[string]*Command{}
	order    []string
	verbose  bool
)

// RegisterCommand makes cmd reachable by name. Commands register from init.
func RegisterCommand(cmd *Command) {
	if _, dup := commands[cmd.Name]; !dup {
		order = append(order, cmd.Name)
	}
	commands[cmd.Name] = cmd
}

// Execute dispatches os.Args.
func Execute() error {
	return execute(os.Args[1:])
}

// globals strips the root flags (--verbose anywhere; help and version only
// before the command name) and reports whether one of the latter ended the
// invocation.
func globals(args []string) (rest []string, done bool) {
	for _, arg := range args {
		switch {
		case arg == "--verbose":
			verbose = true
		case len(rest) == 0 && isHelp(arg):
			printHelp(os.Stdout)
			return nil, true
		case len(rest) == 0 && (arg == "-v" || arg == "--version" || arg == "version"):
			fmt.Printf("refreshdemo version %s (built %s)\n", Version, BuildTime)
			return nil, true
		default:
			rest = append(rest, arg)
		}
	}
	return rest, false
}

func isHelp(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}

func execute(args []string) error {
	args, done := globals(args)
	if done {
		return nil
	}
	if len(args) == 0 {
		printHelp(os.Stdout)
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		printHelp(os.Stderr)
		return fmt.Errorf("unknown command: %s", args[0])
	}
	if slices.ContainsFunc(args[1:], isHelp) {
		fmt.Printf("%s\n\nUsage:\n  %s\n", cmd.Long, cmd.Usage)
		return nil
	}
	return cmd.Run(args[1:])
}

// newLogger returns the diagnostic logger and routes controller error
// reports through it. Without --verbose (or log.verbose) only reported
// errors are logged.
func newLogger(scenarioVerbose bool) (*zap.Logger, error) {
	debug := verbose || scenarioVerbose

	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		logger, err = cfg.Build()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	handler := errors.NewLogHandler(logger)
	handler.Verbose = debug
	errors.SetHandler(handler)
	return logger, nil
}

func printHelp(w io.Writer) {
	fmt.Fprintf(w, "%s\n\nUsage:\n  refreshdemo [--verbose] <command> [flags]\n\nCommands:\n", overview)
	for _, name := range order {
		fmt.Fprintf(w, "  %-10s %s\n", name, commands[name].Short)
	}
	fmt.Fprint(w, `
Global flags:
  -h, --help      Show help
  -v, --version   Print the version
  --verbose       Log controller transitions at debug level

Examples:
  refreshdemo simulate feed.yaml
  refreshdemo spinner -o spinner.png --size large
`)
}
