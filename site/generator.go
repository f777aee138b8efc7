package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pkt.systems/mdsite"
)

// PageError reports a page that could not be generated.
type PageError struct {
	Path string
	Err  error
}

func (e *PageError) Error() string { return e.Path + ": " + e.Err.Error() }

func (e *PageError) Unwrap() error { return e.Err }

// BuildResult summarises a build. Pages holds output paths relative to
// OutputDir in lexical order; Failures is ordered by source path.
type BuildResult struct {
	PagesBuilt   int
	PagesSkipped int
	AssetsCopied int
	Pages        []string
	Failures     []*PageError
	Duration     time.Duration
}

// Generator turns a content tree into a site.
type Generator struct {
	cfg  Config
	log  *zap.Logger
	opts []mdsite.Option
}

// New validates cfg and returns a Generator. A nil logger discards output.
func New(cfg Config, logger *zap.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("site config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Generator{cfg: cfg, log: logger.Named("site")}
	if cfg.Strict {
		g.opts = append(g.opts, mdsite.WithStrictDelimiters(true))
	}
	return g, nil
}

// Build copies static assets and generates every page below ContentDir.
// Without KeepGoing the first failing page cancels the remaining work and
// is returned as a *PageError; the partial result is returned alongside.
func (g *Generator) Build(ctx context.Context) (*BuildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	result := &BuildResult{}

	if g.cfg.Clean {
		g.log.Info("cleaning output", zap.String("dir", g.cfg.OutputDir))
		if err := os.RemoveAll(g.cfg.OutputDir); err != nil {
			return nil, fmt.Errorf("clean output: %w", err)
		}
	}
	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}

	if g.cfg.StaticDir != "" {
		n, err := CopyTree(ctx, g.cfg.StaticDir, g.cfg.OutputDir)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			g.log.Warn("static directory not found, skipping", zap.String("dir", g.cfg.StaticDir))
		case err != nil:
			return nil, fmt.Errorf("copy static: %w", err)
		default:
			g.log.Info("copied static files", zap.String("dir", g.cfg.StaticDir), zap.Int("files", n))
		}
		result.AssetsCopied = n
	}

	tpl, err := LoadTemplate(g.cfg.TemplatePath)
	if err != nil {
		return nil, err
	}
	if missing := tpl.Missing(); len(missing) > 0 {
		g.log.Warn("template lacks placeholders", zap.String("template", tpl.Name()), zap.Strings("placeholders", missing))
	}

	sources, err := findMarkdown(g.cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("scan content: %w", err)
	}
	workers := g.cfg.workers(len(sources))
	g.log.Debug("generating pages", zap.Int("sources", len(sources)), zap.Int("workers", workers))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	var mu sync.Mutex
	for _, src := range sources {
		src := src
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rel, err := filepath.Rel(g.cfg.ContentDir, src)
			if err != nil {
				return err
			}
			out := pageName(rel)
			written, err := g.generatePage(src, filepath.Join(g.cfg.OutputDir, out), tpl)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				perr := &PageError{Path: src, Err: err}
				result.Failures = append(result.Failures, perr)
				g.log.Error("page failed", zap.String("source", src), zap.Error(err))
				if g.cfg.KeepGoing {
					return nil
				}
				return perr
			}
			if !written {
				result.PagesSkipped++
				g.log.Info("skipped draft", zap.String("source", src))
				return nil
			}
			result.PagesBuilt++
			result.Pages = append(result.Pages, filepath.ToSlash(out))
			g.log.Info("generated page", zap.String("source", src), zap.String("output", out))
			return nil
		})
	}
	err = group.Wait()

	sort.Strings(result.Pages)
	sort.Slice(result.Failures, func(i, j int) bool { return result.Failures[i].Path < result.Failures[j].Path })
	result.Duration = time.Since(start)
	if err != nil {
		return result, err
	}
	return result, nil
}

// GeneratePage converts the markdown file src into dst using tpl. Drafts are
// not written.
func (g *Generator) GeneratePage(src, dst string, tpl *Template) error {
	_, err := g.generatePage(src, dst, tpl)
	return err
}

func (g *Generator) generatePage(src, dst string, tpl *Template) (bool, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return false, err
	}
	if err := mdsite.ValidateInput(data); err != nil {
		return false, err
	}
	fm, body, err := ParseFrontMatter(data)
	if err != nil {
		return false, err
	}
	if fm.Draft {
		return false, nil
	}
	markdown := string(body)
	content, err := mdsite.ToHTML(markdown, g.opts...)
	if err != nil {
		return false, err
	}
	title := fm.Title
	if title == "" {
		if title, err = ExtractTitle(markdown); err != nil {
			return false, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, err
	}
	if err := writeFileAtomic(dst, []byte(tpl.Render(title, content))); err != nil {
		return false, err
	}
	return true, nil
}

// findMarkdown lists markdown sources below root in lexical order.
func findMarkdown(root string) ([]string, error) {
	var sources []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && isMarkdown(path) {
			sources = append(sources, path)
		}
		return nil
	})
	return sources, err
}

func isMarkdown(path string) bool {
	ext := filepath.Ext(path)
	return strings.EqualFold(ext, ".md") || strings.EqualFold(ext, ".markdown")
}

func pageName(rel string) string {
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + ".html"
}

// writeFileAtomic writes data next to path and renames it into place so a
// reader never observes a partial page.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".mdsite-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Chmod(name, 0o644); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}
