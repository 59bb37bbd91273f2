// Command visa-inspect is an interactive inspector for simulated
// instrument resources. It loads a resource definition from YAML and
// exposes the registered attribute descriptors over a readline prompt.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/visa-protocol/visa-go/pkg/attributes"
	"github.com/visa-protocol/visa-go/pkg/sim"
	"github.com/visa-protocol/visa-go/pkg/trace"
)

func main() {
	definition := flag.String("definition", "", "Path to the resource definition YAML")
	traceFile := flag.String("trace", "", "Write an access trace to this file (CBOR)")
	verbose := flag.Bool("verbose", false, "Echo attribute accesses to the console")
	flag.Parse()

	if *definition == "" {
		fmt.Fprintln(os.Stderr, "Usage: visa-inspect -definition <file.yaml> [-trace <file.vtrace>] [-verbose]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*definition, *traceFile, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(definition, traceFile string, verbose bool) error {
	def, err := sim.LoadDefinition(definition)
	if err != nil {
		return err
	}
	res, err := sim.NewResource(def)
	if err != nil {
		return err
	}

	var loggers []trace.Logger
	if traceFile != "" {
		fl, err := trace.NewFileLogger(traceFile)
		if err != nil {
			return err
		}
		defer fl.Close()
		loggers = append(loggers, fl)
	}
	if verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		loggers = append(loggers, trace.NewSlogAdapter(slog.New(handler)))
	}
	if len(loggers) > 0 {
		res.SetTraceLogger(trace.NewMultiLogger(loggers...))
	}

	insp, err := newInspector(res)
	if err != nil {
		return err
	}
	defer insp.Close()

	fmt.Printf("session %s (%s)\n", res.SessionID(), res.Descriptor())
	insp.Run()
	return nil
}

// inspector is the readline-driven command loop.
type inspector struct {
	res *sim.Resource
	rl  *readline.Instance
}

func newInspector(res *sim.Resource) (*inspector, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "visa> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &inspector{res: res, rl: rl}, nil
}

func (i *inspector) Close() error {
	return i.rl.Close()
}

// Run reads commands until EOF or quit.
func (i *inspector) Run() {
	i.printHelp()

	for {
		line, err := i.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(i.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			i.printHelp()

		case "list", "l":
			i.cmdList()

		case "info", "i":
			i.cmdInfo(args)

		case "get", "g":
			i.cmdGet(args)

		case "set", "s":
			i.cmdSet(args)

		case "quit", "exit", "q":
			fmt.Fprintln(i.rl.Stdout(), "Exiting...")
			return

		default:
			fmt.Fprintf(i.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (i *inspector) printHelp() {
	fmt.Fprintln(i.rl.Stdout(), `
Commands:
  list               - List attributes applicable to this resource
  info <name>        - Show a descriptor (id, access, applicability)
  get <name>         - Read an attribute through its typed descriptor
  set <name> <value> - Write an attribute through its typed descriptor
  quit               - Exit`)
}

func (i *inspector) cmdList() {
	for _, d := range attributes.ForResource(i.res.Descriptor()) {
		fmt.Fprintf(i.rl.Stdout(), "  %s  %-3s %s\n", d.AttrID(), d.AttrAccess(), d.AttrName())
	}
}

func (i *inspector) cmdInfo(args []string) {
	d, ok := i.lookup(args)
	if !ok {
		return
	}
	fmt.Fprintf(i.rl.Stdout(), "name:       %s\n", d.AttrName())
	fmt.Fprintf(i.rl.Stdout(), "id:         %s\n", d.AttrID())
	fmt.Fprintf(i.rl.Stdout(), "access:     %s\n", d.AttrAccess())
	fmt.Fprintf(i.rl.Stdout(), "applicable: %v\n", d.InResource(i.res.Descriptor()))
}

func (i *inspector) cmdGet(args []string) {
	d, ok := i.lookup(args)
	if !ok {
		return
	}
	v, err := getTyped(d, i.res)
	if err != nil {
		fmt.Fprintf(i.rl.Stdout(), "error: %v\n", err)
		return
	}
	fmt.Fprintf(i.rl.Stdout(), "%v\n", v)
}

func (i *inspector) cmdSet(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(i.rl.Stdout(), "usage: set <name> <value>")
		return
	}
	d, ok := i.lookup(args[:1])
	if !ok {
		return
	}
	if err := setTyped(d, i.res, args[1]); err != nil {
		fmt.Fprintf(i.rl.Stdout(), "error: %v\n", err)
		return
	}
	fmt.Fprintln(i.rl.Stdout(), "ok")
}

// lookup finds a registered descriptor by VISA name, tolerating the
// VI_ATTR_ prefix being omitted.
func (i *inspector) lookup(args []string) (attributes.Descriptor, bool) {
	if len(args) != 1 {
		fmt.Fprintln(i.rl.Stdout(), "usage: <command> <name>")
		return nil, false
	}
	name := strings.ToUpper(args[0])
	if !strings.HasPrefix(name, "VI_ATTR_") {
		name = "VI_ATTR_" + name
	}
	d, ok := attributes.LookupName(name)
	if !ok {
		fmt.Fprintf(i.rl.Stdout(), "unknown attribute %s\n", name)
		return nil, false
	}
	return d, true
}
