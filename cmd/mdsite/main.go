package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"pkt.systems/version"
)

const defaultWidth = 80

func init() {
	version.SetDefaultModule("pkt.systems/mdsite")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run dispatches a subcommand and returns the process exit code: 0 on
// success, 1 when work failed and 2 for usage errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	loadDotEnv(".env", stderr)
	if len(args) == 0 {
		usage(stderr)
		return 2
	}
	switch args[0] {
	case "build":
		return runBuild(args[1:], stdout, stderr)
	case "render":
		return runRender(args[1:], stdin, stdout, stderr)
	case "version", "--version", "-v":
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	case "help", "--help", "-h":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, version.Module(), version.Current())
	fmt.Fprintln(w, "Usage: mdsite <command> [flags]")
	fmt.Fprintln(w, "\nCommands:")
	fmt.Fprintln(w, "  build    generate a site from a content directory")
	fmt.Fprintln(w, "  render   convert markdown from files, URLs or stdin to HTML")
	fmt.Fprintln(w, "  version  print the version")
	fmt.Fprintln(w, "\nRun 'mdsite <command> --help' for command flags.")
}

// loadDotEnv fills unset MDSITE_* variables from path. A missing file is
// not an error.
func loadDotEnv(path string, stderr io.Writer) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(stderr, "warning: %s: %v\n", path, err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
