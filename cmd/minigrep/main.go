package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Veraticus/minigrep/pkg/config"
	flag "github.com/spf13/pflag"
)

func main() {
	ignoreSIGPIPE()

	// No flags are defined; pflag still handles "--" and argument splitting.
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}
	pattern := flag.Arg(0)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if os.Getenv("MINIGREP_DEBUG") == "1" {
		fmt.Fprintf(os.Stderr, "minigrep: config: max_line_bytes=%d match_timeout=%v\n",
			cfg.MaxLineBytes, cfg.MatchTimeout)
	}

	// Compile the pattern and wire up the filter
	deps, err := NewDependencies(cfg, pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create application
	app := NewApplication(deps)

	// Run the filter over the standard streams
	if err := app.Run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if os.Getenv("MINIGREP_DEBUG") == "1" {
		fmt.Fprintf(os.Stderr, "minigrep: scanned %d lines, matched %d\n",
			deps.Filter.LinesScanned(), deps.Filter.LinesMatched())
	}
}

// ignoreSIGPIPE keeps a closed stdout pipe from killing the process with
// SIGPIPE, so the write returns EPIPE and the filter can stop quietly.
func ignoreSIGPIPE() {
	signal.Ignore(syscall.SIGPIPE)
}

func printUsage() {
	usage(os.Stderr)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "minigrep - filter stdin lines by a regular expression")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: minigrep <pattern>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Example:")
	fmt.Fprintln(w, `  cat emails.txt | minigrep "^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$"`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, `Put "--" before a pattern that begins with "-":`)
	fmt.Fprintln(w, `  cat log.txt | minigrep -- "-\d+"`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment Variables:")
	fmt.Fprintln(w, "  MINIGREP_CONFIG          Path to config file")
	fmt.Fprintln(w, "  MINIGREP_MAX_LINE_BYTES  Maximum input line length (default: 1048576)")
	fmt.Fprintln(w, "  MINIGREP_MATCH_TIMEOUT   Per-line match timeout, e.g. 500ms (default: disabled)")
	fmt.Fprintln(w, "  MINIGREP_DEBUG           Print debug info to stderr (1 to enable)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration file: ~/.config/minigrep/config.yaml")
}
