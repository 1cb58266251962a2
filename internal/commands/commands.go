package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
)

// ErrUsage is returned when no subcommand or an unknown one is given.
var ErrUsage = errors.New("usage")

// Command is one fractals subcommand. Summary is its line in the usage listing; Run reads the
// parsed FlagSet through the variables bound to it.
type Command struct {
	Name    string
	Summary string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry maps the first command-line argument to a Command.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns a Registry with no subcommands.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. fs is that command's FlagSet; run is called after fs.Parse(args[1:]) succeeds.
func (r *Registry) Register(name, summary string, fs *flag.FlagSet, run func() error) {
	r.cmds[name] = &Command{Name: name, Summary: summary, FlagSet: fs, Run: run}
}

// Names returns the registered subcommands in alphabetical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Usage writes one line per subcommand.
func (r *Registry) Usage(w io.Writer) {
	fmt.Fprintln(w, "subcommands:")
	for _, name := range r.Names() {
		fmt.Fprintf(w, "  %-12s %s\n", name, r.cmds[name].Summary)
	}
}

// Execute looks up args[0], parses the rest into its FlagSet and calls Run. An empty or
// unrecognized args[0] yields ErrUsage so the caller can print Usage.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand: %w", ErrUsage)
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command %s: %w", name, ErrUsage)
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return err
	}
	return cmd.Run()
}

// IsSet reports whether the flag name was given on the command line, as opposed to left at
// its default.
func IsSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
