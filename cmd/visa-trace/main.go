// Command visa-trace is a tool for viewing and analyzing attribute
// access trace files.
//
// Trace files are created by hosts with a trace.FileLogger installed,
// for example by running visa-inspect with the -trace flag.
//
// Usage:
//
//	visa-trace <command> [flags] <file.vtrace>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSON or CSV format
//	filter   Filter trace file and write to new file
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all accesses
//	visa-trace view session.vtrace
//
//	# View only writes
//	visa-trace view -op set session.vtrace
//
//	# Export to JSONL
//	visa-trace export -format jsonl session.vtrace
//
//	# Keep only the failed accesses of one session
//	visa-trace filter -session abc12345 -failed -o failed.vtrace session.vtrace
//
//	# Show statistics
//	visa-trace stats session.vtrace
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/visa-protocol/visa-go/cmd/visa-trace/commands"
	"github.com/visa-protocol/visa-go/pkg/trace"
)

const usage = `visa-trace - Attribute Access Trace Analyzer

Usage:
  visa-trace <command> [flags] <file.vtrace>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSON or CSV format
  filter   Filter trace file and write to new file
  stats    Show statistics about the trace file

Use "visa-trace <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// parseCommonFilter adds the shared filter flags to fs and returns a
// builder resolving them after parsing.
func parseCommonFilter(fs *flag.FlagSet) func() (trace.Filter, error) {
	session := fs.String("session", "", "Filter by session ID")
	op := fs.String("op", "", "Filter by operation (get, set)")
	attr := fs.String("attr", "", "Filter by attribute (hex id or VISA name)")
	failed := fs.Bool("failed", false, "Keep only failed accesses")

	return func() (trace.Filter, error) {
		filter := trace.Filter{
			SessionID:  *session,
			FailedOnly: *failed,
		}
		if *op != "" {
			o, err := commands.ParseOperationFlag(*op)
			if err != nil {
				return trace.Filter{}, err
			}
			filter.Operation = &o
		}
		if *attr != "" {
			id, err := commands.ParseAttributeFlag(*attr)
			if err != nil {
				return trace.Filter{}, err
			}
			filter.AttributeID = &id
		}
		return filter, nil
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	buildFilter := parseCommonFilter(fs)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		os.Exit(1)
	}

	filter, err := buildFilter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := commands.RunView(fs.Arg(0), filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		os.Exit(1)
	}

	if err := commands.RunExport(fs.Arg(0), *format, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	output := fs.String("o", "", "Output file (required)")
	buildFilter := parseCommonFilter(fs)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		os.Exit(1)
	}
	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		os.Exit(1)
	}

	filter, err := buildFilter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := commands.RunFilter(fs.Arg(0), filter, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
