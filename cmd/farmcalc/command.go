package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/osse101/FarmCalc_Go/internal/planner"
)

const (
	appName        = "farmcalc"
	defaultProfile = "cli"
	envProfile     = "FARMCALC_PROFILE"
)

// Env is what every command runs against
type Env struct {
	Out     io.Writer
	Planner planner.Service
}

// Command is one farmcalc subcommand
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, env *Env, args []string) error
}

// Registry manages the available commands
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates a new command registry
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command to the registry
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns the commands sorted by name
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// PrintHelp prints the usage information
func (r *Registry) PrintHelp(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s <command> [flags] [args...]\n", appName)
	fmt.Fprintln(w, "\nAvailable Commands:")

	cmds := r.List()
	maxLen := 0
	for _, cmd := range cmds {
		maxLen = max(maxLen, len(cmd.Name()))
	}
	for _, cmd := range cmds {
		fmt.Fprintf(w, "  %-*s  %s\n", maxLen, cmd.Name(), cmd.Description())
	}
	fmt.Fprintf(w, "\nEvery command accepts -profile (default $%s or %q).\n", envProfile, defaultProfile)
}

// newFlagSet returns a flag set with the shared -profile flag bound to profile
func newFlagSet(name string, profile *string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	def := os.Getenv(envProfile)
	if def == "" {
		def = defaultProfile
	}
	fs.StringVar(profile, "profile", def, "preference profile")
	return fs
}

// registerCommands lists every farmcalc command in one place
func registerCommands(r *Registry) {
	r.Register(&RankCommand{})
	r.Register(&DetailCommand{})
	r.Register(&SetPriceCommand{})
	r.Register(&SetCommand{})
	r.Register(&PrefsCommand{})
	r.Register(&CatalogCommand{})
}
