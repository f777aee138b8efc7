package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"pkt.systems/mdsite"
	"pkt.systems/mdsite/site"
)

const defaultFetchTimeout = 30 * time.Second

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		outPath      string
		templatePath string
		strict       bool
		timeout      time.Duration
	)
	flags := pflag.NewFlagSet("mdsite render", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.StringVarP(&templatePath, "template", "t", "", "Wrap the result in a page template")
	flags.BoolVar(&strict, "strict", false, "Fail blocks without any inline code, bold or italic marker")
	flags.DurationVar(&timeout, "timeout", defaultFetchTimeout, "Timeout for http(s) inputs")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: mdsite render [flags] [inputs...]")
		fmt.Fprintln(stderr, "\nInputs are files, file:// or http(s) URLs. Several inputs are joined")
		fmt.Fprintln(stderr, "as separate blocks. If no input is provided, markdown is read from stdin.")
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	client := &http.Client{Timeout: timeout}
	doc, err := readInputs(ctx, client, flags.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return 1
	}

	var opts []mdsite.Option
	if strict {
		opts = append(opts, mdsite.WithStrictDelimiters(true))
	}
	html, err := mdsite.ToHTML(doc.markdown, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "render: %v\n", err)
		return 1
	}
	if templatePath != "" {
		tpl, err := site.LoadTemplate(normalizePath(templatePath))
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return 1
		}
		title := doc.title
		if title == "" {
			if title, err = site.ExtractTitle(doc.markdown); err != nil {
				fmt.Fprintf(stderr, "render: %v\n", err)
				return 1
			}
		}
		html = tpl.Render(title, html)
	}

	writer, closeOut, err := resolveOutput(outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}
	if _, err := fmt.Fprintln(writer, html); err != nil {
		fmt.Fprintf(stderr, "write output: %v\n", err)
		return 1
	}
	return 0
}

type document struct {
	markdown string
	title    string
}

// readInputs reads every input, strips its front matter and joins the
// bodies with a blank line. The first front matter title is kept.
func readInputs(ctx context.Context, client *http.Client, args []string, stdin io.Reader) (document, error) {
	if len(args) == 0 {
		return readDocument(stdin, "stdin")
	}
	var (
		doc    document
		bodies []string
	)
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return document{}, err
		}
		r, err := src.open(ctx, client)
		if err != nil {
			return document{}, err
		}
		part, err := readDocument(r, src.name)
		_ = r.Close()
		if err != nil {
			return document{}, err
		}
		if doc.title == "" {
			doc.title = part.title
		}
		bodies = append(bodies, part.markdown)
	}
	doc.markdown = strings.Join(bodies, "\n\n")
	return doc, nil
}

func readDocument(r io.Reader, name string) (document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return document{}, fmt.Errorf("%s: %w", name, err)
	}
	if err := mdsite.ValidateInput(data); err != nil {
		return document{}, fmt.Errorf("%s: %w", name, err)
	}
	fm, body, err := site.ParseFrontMatter(data)
	if err != nil {
		return document{}, fmt.Errorf("%s: %w", name, err)
	}
	return document{markdown: string(body), title: fm.Title}, nil
}

type inputSource struct {
	name string
	open func(ctx context.Context, client *http.Client) (io.ReadCloser, error)
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{name: raw, open: func(ctx context.Context, client *http.Client) (io.ReadCloser, error) {
				return openURL(ctx, client, raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{name: path, open: func(context.Context, *http.Client) (io.ReadCloser, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{name: raw, open: func(context.Context, *http.Client) (io.ReadCloser, error) {
		return openFile(raw)
	}}, nil
}

func openURL(ctx context.Context, client *http.Client, raw string) (io.ReadCloser, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: build request: %w", err)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return nil, fmt.Errorf("fetch: unsupported scheme %q", req.URL.Scheme)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: status %s", raw, resp.Status)
	}
	return resp.Body, nil
}

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(normalizePath(path))
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
