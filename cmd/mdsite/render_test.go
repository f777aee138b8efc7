package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadInputsFileAndURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.md")
	writeFile(t, path, "hello")

	doc, err := readInputs(context.Background(), nil, []string{path}, nil)
	if err != nil {
		t.Fatalf("readInputs file: %v", err)
	}
	if doc.markdown != "hello" {
		t.Fatalf("unexpected file content: %q", doc.markdown)
	}

	doc, err = readInputs(context.Background(), nil, []string{"file://" + path}, nil)
	if err != nil {
		t.Fatalf("readInputs file URL: %v", err)
	}
	if doc.markdown != "hello" {
		t.Fatalf("unexpected file URL content: %q", doc.markdown)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("---\ntitle: Remote\n---\nfetched"))
	}))
	defer srv.Close()
	doc, err = readInputs(context.Background(), srv.Client(), []string{srv.URL}, nil)
	if err != nil {
		t.Fatalf("readInputs http: %v", err)
	}
	if strings.TrimSpace(doc.markdown) != "fetched" || doc.title != "Remote" {
		t.Fatalf("unexpected http document: %+v", doc)
	}
}

func TestReadInputsJoinsDocuments(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.md")
	second := filepath.Join(dir, "b.md")
	writeFile(t, first, "one")
	writeFile(t, second, "two")
	doc, err := readInputs(context.Background(), nil, []string{first, second}, nil)
	if err != nil {
		t.Fatalf("readInputs: %v", err)
	}
	if doc.markdown != "one\n\ntwo" {
		t.Fatalf("unexpected joined content: %q", doc.markdown)
	}
}

func TestReadInputsErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()
	if _, err := readInputs(context.Background(), srv.Client(), []string{srv.URL}, nil); err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status error, got %v", err)
	}
	if _, err := readInputs(context.Background(), nil, []string{"  "}, nil); err == nil {
		t.Fatalf("expected error for empty argument")
	}
	if _, err := readInputs(context.Background(), nil, []string{filepath.Join(t.TempDir(), "nope.md")}, nil); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := readInputs(context.Background(), nil, nil, strings.NewReader("a\x00b")); err == nil || !strings.Contains(err.Error(), "binary") {
		t.Fatalf("expected binary input error, got %v", err)
	}
}

func TestRunRenderStdin(t *testing.T) {
	t.Parallel()
	var stdout, stderr bytes.Buffer
	code := run([]string{"render"}, strings.NewReader("# Hi\n\n- a\n- b"), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, stderr.String())
	}
	if want := "<div><h1>Hi</h1><ul><li>a</li><li>b</li></ul></div>\n"; stdout.String() != want {
		t.Fatalf("expected %q, got %q", want, stdout.String())
	}
}

func TestRunRenderTemplateAndOutput(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	input := filepath.Join(dir, "page.md")
	tpl := filepath.Join(dir, "t.html")
	out := filepath.Join(dir, "out", "page.html")
	writeFile(t, input, "# Page\n\ntext")
	writeFile(t, tpl, "[{{ Title }}]{{ Content }}")

	var stdout, stderr bytes.Buffer
	code := run([]string{"render", input, "-t", tpl, "-o", out}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, stderr.String())
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if want := "[Page]<div><h1>Page</h1><p>text</p></div>\n"; string(data) != want {
		t.Fatalf("expected %q, got %q", want, string(data))
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected nothing on stdout, got %q", stdout.String())
	}
}

func TestRunRenderErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		args  []string
		input string
		want  string
	}{
		{name: "empty document", args: []string{"render"}, input: "\n\n", want: "empty document"},
		{name: "malformed list", args: []string{"render"}, input: "1. a\n3. b", want: "block 1 (ordered list)"},
		{name: "strict", args: []string{"render", "--strict"}, input: "plain", want: "no delimiter"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer
			code := run(tc.args, strings.NewReader(tc.input), &stdout, &stderr)
			if code != 1 {
				t.Fatalf("expected exit 1, got %d", code)
			}
			if !strings.Contains(stderr.String(), tc.want) {
				t.Fatalf("expected %q in stderr, got %q", tc.want, stderr.String())
			}
		})
	}
}

func TestNormalizePathExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := normalizePath("~/notes.md"); got != filepath.Join(home, "notes.md") {
		t.Fatalf("expected %q, got %q", filepath.Join(home, "notes.md"), got)
	}
	if !filepath.IsAbs(normalizePath("relative.md")) {
		t.Fatalf("expected absolute path")
	}
}
