package shell

import (
	"fmt"
	"os"

	"github.com/pborman/getopt/v2"

	"github.com/josephlewis42/lsh/core/logger"
)

// Signal reports whether the interpreter should keep reading commands.
type Signal int

const (
	// Continue keeps the interpreter loop running.
	Continue Signal = iota
	// Terminate stops the interpreter loop.
	Terminate
)

// Builtin is a command the interpreter runs itself instead of launching
// an external program.
type Builtin interface {
	Main(s *Shell, args []string) Signal
}

// BuiltinFunc adapts a plain function to the Builtin interface.
type BuiltinFunc func(s *Shell, args []string) Signal

func (f BuiltinFunc) Main(s *Shell, args []string) Signal {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// Registry maps command names to builtins. It's built once before the
// loop starts and never mutated afterwards; lookups are case-sensitive
// exact matches.
type Registry struct {
	names    []string
	builtins map[string]Builtin
}

// NewRegistry builds the registry holding the default builtin set.
func NewRegistry() *Registry {
	r := &Registry{builtins: make(map[string]Builtin)}
	r.add("cd", BuiltinFunc(Cd))
	r.add("help", BuiltinFunc(Help))
	r.add("exit", BuiltinFunc(Exit))
	r.add("history", BuiltinFunc(History))
	return r
}

func (r *Registry) add(name string, builtin Builtin) {
	r.names = append(r.names, name)
	r.builtins[name] = builtin
}

// Lookup finds a builtin by its exact name.
func (r *Registry) Lookup(name string) (Builtin, bool) {
	builtin, ok := r.builtins[name]
	return builtin, ok
}

// Names lists the registered builtins in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Cd is the cd builtin. It changes the process wide working directory;
// on any failure the directory is left unchanged.
func Cd(s *Shell, args []string) Signal {
	switch len(args) {
	case 2:
		if err := os.Chdir(args[1]); err != nil {
			fmt.Fprintf(s.stderr, "%s: %v\n", args[0], err)
			s.logEvent(logger.EventInvalidInvocation, args, err)
		}
	case 1:
		fmt.Fprintf(s.stderr, "%s: expected argument\n", args[0])
		s.logEvent(logger.EventInvalidInvocation, args, nil)
	default:
		fmt.Fprintf(s.stderr, "%s: too many arguments\n", args[0])
		s.logEvent(logger.EventInvalidInvocation, args, nil)
	}
	return Continue
}

// Help enumerates the registered builtins.
func Help(s *Shell, args []string) Signal {
	w := s.stdout
	fmt.Fprintln(w, "lsh: a small command interpreter")
	fmt.Fprintln(w, "Type program names and arguments, and hit enter.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "These commands are defined internally:")
	for _, name := range s.builtins.Names() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w, "Use the man command for information on other programs.")
	return Continue
}

// Exit stops the interpreter. Arguments are ignored.
func Exit(s *Shell, args []string) Signal {
	return Terminate
}

// History displays or clears the persisted command history. The clear
// flag is accepted in either case per the historical interface.
func History(s *Shell, args []string) Signal {
	opts := getopt.New()
	clear := opts.Bool('c', "clear the history by deleting all entries")
	clearUpper := opts.Bool('C', "alias of -c")

	usage := func(err error) {
		fmt.Fprintf(s.stderr, "%s: %v\n", args[0], err)
		fmt.Fprintf(s.stderr, "usage: %s [-c]\n", args[0])
		s.logEvent(logger.EventInvalidInvocation, args, err)
	}

	if err := opts.Getopt(args, nil); err != nil {
		usage(err)
		return Continue
	}
	if rest := opts.Args(); len(rest) > 0 {
		usage(fmt.Errorf("invalid option: %s", rest[0]))
		return Continue
	}

	if *clear || *clearUpper {
		if err := s.history.Clear(); err != nil {
			fmt.Fprintf(s.stderr, "%s: %v\n", args[0], err)
			return Continue
		}
		fmt.Fprintln(s.stdout, "History cleared successfully.")
		return Continue
	}

	records, err := s.history.ReadAll()
	if err != nil {
		fmt.Fprintf(s.stderr, "%s: %v\n", args[0], err)
		return Continue
	}
	for _, record := range records {
		fmt.Fprintln(s.stdout, record.Format())
	}
	return Continue
}
