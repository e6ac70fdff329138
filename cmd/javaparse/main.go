// Command javaparse parses Java source files and reports diagnostics (and, in
// --dump mode, the syntax tree of each file that parsed without
// diagnostics), concurrently across however many files are given.
//
// Flag parsing follows the teacher's mysqldef_main.go: a flags.NewParser over
// a plain options struct, --help/--version handled before anything else runs.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	"github.com/cowwoc/styler-sub000/concurrent"
	"github.com/cowwoc/styler-sub000/javaversion"
	"github.com/cowwoc/styler-sub000/logging"
)

var version = "0.0.1"

type options struct {
	LanguageVersion string `long:"java" description:"Java language level to parse against: 21, 25, or 25-preview" value-name:"version" default:"25"`
	Concurrency     int    `long:"concurrency" description:"Maximum number of files parsed at once (0 disables concurrency, negative removes the limit)" value-name:"n" default:"4"`
	Dump            bool   `long:"dump" description:"Print the syntax tree of each file that parses without diagnostics"`
	Color           string `long:"color" description:"Colorize diagnostics: auto, always, or never" value-name:"mode" default:"auto"`
	Help            bool   `long:"help" description:"Show this help"`
	Version         bool   `long:"version" description:"Show this version"`
}

// shouldColorize resolves the --color flag. "auto" colorizes only when
// stdout is itself a terminal, the same x/term.IsTerminal check the
// teacher's mysqldef.go uses before prompting for a password interactively
// rather than reading one from a pipe.
func shouldColorize(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

func parseVersion(spelling string) (javaversion.Version, error) {
	switch spelling {
	case "21":
		return javaversion.Java21, nil
	case "25":
		return javaversion.Java25, nil
	case "25-preview":
		return javaversion.Java25Preview, nil
	default:
		return 0, fmt.Errorf("unrecognized Java language level %q (want 21, 25, or 25-preview)", spelling)
	}
}

func parseArgs(args []string) (*options, []string) {
	var opts options
	p := flags.NewParser(&opts, flags.None)
	p.Usage = "[options] file.java [file.java ...]"
	paths, err := p.ParseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if opts.Help {
		p.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}
	if len(paths) == 0 {
		fmt.Fprint(os.Stderr, "No input files given!\n\n")
		p.WriteHelp(os.Stderr)
		os.Exit(1)
	}
	return &opts, paths
}

func main() {
	logging.Init()
	opts, paths := parseArgs(os.Args[1:])

	langVersion, err := parseVersion(opts.LanguageVersion)
	if err != nil {
		slog.Error("invalid --java value", "error", err)
		os.Exit(1)
	}

	files := make([]concurrent.File, 0, len(paths))
	for _, path := range paths {
		text, err := os.ReadFile(path)
		if err != nil {
			slog.Error("failed to read file", "path", path, "error", err)
			os.Exit(1)
		}
		files = append(files, concurrent.File{Path: path, Text: string(text)})
	}

	results, err := concurrent.ParseFiles(context.Background(), files, opts.Concurrency, langVersion)
	if err != nil {
		slog.Error("parsing cancelled", "error", err)
		os.Exit(1)
	}

	colorize := shouldColorize(opts.Color)
	exitCode := 0
	printer := pp.New()
	for _, result := range results {
		if result.Err != nil {
			slog.Error("failed to load source", "path", result.Path, "error", result.Err)
			exitCode = 1
			continue
		}
		if !result.Parsed.Success() {
			exitCode = 1
			for _, d := range result.Parsed.Diagnostics {
				line := fmt.Sprintf("%s: %s", result.Path, d.Message)
				if colorize {
					line = ansiRed + line + ansiReset
				}
				fmt.Println(line)
			}
			continue
		}
		if opts.Dump {
			printer.Printf("%s:\n", result.Path)
			printer.Println(result.Parsed.Arena)
		}
	}
	os.Exit(exitCode)
}
