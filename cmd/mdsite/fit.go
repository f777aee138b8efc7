package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
	"golang.org/x/term"
)

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

// fitPath shortens path to limit columns, first by making it relative to
// the working directory and then by eliding its head.
func fitPath(path string, limit int) string {
	if ansi.PrintableRuneWidth(path) <= limit {
		return path
	}
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, path); err == nil && !strings.HasPrefix(rel, "..") {
			if ansi.PrintableRuneWidth(rel) <= limit {
				return rel
			}
			path = rel
		}
	}
	return truncateHead(path, limit)
}

// truncateHead keeps the last limit-1 runes of text behind an ellipsis.
func truncateHead(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return "…" + string(runes[len(runes)-limit+1:])
}
