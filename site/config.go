package site

import (
	"errors"
	"path/filepath"
	"runtime"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config is the explicit configuration of a build. Paths are used as given;
// nothing is resolved against the process working directory beyond what the
// operating system does for relative paths.
type Config struct {
	ContentDir   string
	OutputDir    string
	StaticDir    string
	TemplatePath string
	// Workers bounds concurrent page conversions. Zero uses runtime.NumCPU.
	Workers int
	// Clean removes OutputDir before building.
	Clean bool
	// KeepGoing records failing pages and continues with the rest instead of
	// stopping at the first failure.
	KeepGoing bool
	// Strict rejects blocks that lack any inline code, bold or italic marker.
	Strict bool
}

// DefaultConfig returns the conventional layout relative to the working
// directory.
func DefaultConfig() Config {
	return Config{
		ContentDir:   "content",
		OutputDir:    "public",
		StaticDir:    "static",
		TemplatePath: "template.html",
	}
}

// Validate checks that the required paths are set and that OutputDir is a
// safe target for Clean.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ContentDir, validation.Required),
		validation.Field(&c.OutputDir, validation.Required, validation.By(safeOutputDir(c.ContentDir, c.StaticDir))),
		validation.Field(&c.TemplatePath, validation.Required),
		validation.Field(&c.Workers, validation.Min(0)),
	)
}

func safeOutputDir(content, static string) validation.RuleFunc {
	return func(value any) error {
		out, _ := value.(string)
		if out == "" {
			return nil
		}
		abs, err := filepath.Abs(out)
		if err != nil {
			return err
		}
		if abs == filepath.Dir(abs) {
			return errors.New("must not be a filesystem root")
		}
		for _, other := range []string{content, static} {
			if other == "" {
				continue
			}
			otherAbs, err := filepath.Abs(other)
			if err != nil {
				return err
			}
			if abs == otherAbs || isWithin(otherAbs, abs) {
				return errors.New("must not contain the content or static directory")
			}
		}
		return nil
	}
}

// isWithin reports whether path lies inside dir.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !filepath.IsAbs(rel) && !startsWithParent(rel)
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:2] == ".." && rel[2] == filepath.Separator
}

func (c Config) workers(jobs int) int {
	n := c.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n < 1 {
		n = 1
	}
	if jobs > 0 && n > jobs {
		return jobs
	}
	return n
}
