package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/pflag"

	"pkt.systems/mdsite/internal/logging"
	"pkt.systems/mdsite/site"
)

func runBuild(args []string, stdout, stderr io.Writer) int {
	cfg := site.DefaultConfig()
	var (
		logLevel string
		logFile  string
		logJSON  bool
		width    int
	)
	flags := pflag.NewFlagSet("mdsite build", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&cfg.ContentDir, "content", "c", envOr("MDSITE_CONTENT", cfg.ContentDir), "Markdown content directory ($MDSITE_CONTENT)")
	flags.StringVarP(&cfg.StaticDir, "static", "s", envOr("MDSITE_STATIC", cfg.StaticDir), "Static files copied verbatim ($MDSITE_STATIC)")
	flags.StringVarP(&cfg.TemplatePath, "template", "t", envOr("MDSITE_TEMPLATE", cfg.TemplatePath), "Page template ($MDSITE_TEMPLATE)")
	flags.StringVarP(&cfg.OutputDir, "output", "o", envOr("MDSITE_OUTPUT", cfg.OutputDir), "Output directory ($MDSITE_OUTPUT)")
	flags.IntVarP(&cfg.Workers, "workers", "j", 0, "Concurrent page conversions (0 uses all CPUs)")
	flags.BoolVar(&cfg.Clean, "clean", false, "Remove the output directory first")
	flags.BoolVarP(&cfg.KeepGoing, "keep-going", "k", false, "Continue past failing pages")
	flags.BoolVar(&cfg.Strict, "strict", false, "Fail blocks without any inline code, bold or italic marker")
	flags.StringVar(&logLevel, "log-level", envOr("MDSITE_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")
	flags.StringVar(&logFile, "log-file", "", "Also write JSON logs to this file")
	flags.BoolVar(&logJSON, "log-json", false, "Write console logs as JSON")
	flags.IntVarP(&width, "width", "w", 0, "Summary width (0 uses terminal width if available)")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: mdsite build [flags]")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		return 2
	}
	cfg.ContentDir = normalizePath(cfg.ContentDir)
	cfg.OutputDir = normalizePath(cfg.OutputDir)
	cfg.TemplatePath = normalizePath(cfg.TemplatePath)
	if cfg.StaticDir != "" {
		cfg.StaticDir = normalizePath(cfg.StaticDir)
	}
	if logFile != "" {
		logFile = normalizePath(logFile)
	}

	logger, closeLog, err := logging.New(logging.Options{
		Level:   logLevel,
		Console: stderr,
		JSON:    logJSON,
		File:    logFile,
	})
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}
	defer closeLog()

	gen, err := site.New(cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	res, err := gen.Build(ctx)
	if res != nil {
		printSummary(stdout, res, resolveWidth(width))
	}
	if err != nil {
		fmt.Fprintf(stderr, "build: %v\n", err)
		return 1
	}
	if len(res.Failures) > 0 {
		return 1
	}
	return 0
}

func printSummary(w io.Writer, res *site.BuildResult, width int) {
	good := color.New(color.FgGreen, color.Bold).SprintFunc()
	warn := color.New(color.FgYellow, color.Bold).SprintFunc()
	bad := color.New(color.FgRed, color.Bold).SprintFunc()

	fmt.Fprintf(w, "%s %d %s and %d %s in %s\n",
		good("built"),
		res.PagesBuilt, plural(res.PagesBuilt, "page", "pages"),
		res.AssetsCopied, plural(res.AssetsCopied, "asset", "assets"),
		res.Duration.Round(time.Millisecond))
	if res.PagesSkipped > 0 {
		fmt.Fprintf(w, "%s %d %s\n", warn("skipped"), res.PagesSkipped, plural(res.PagesSkipped, "draft", "drafts"))
	}
	for _, f := range res.Failures {
		fmt.Fprintf(w, "%s %s\n", bad("failed"), fitPath(f.Path, width-len("failed ")))
		fmt.Fprintln(w, indent.String(wordwrap.String(f.Err.Error(), width-4), 4))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
