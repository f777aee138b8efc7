// Package site builds a static site from a tree of markdown files.
//
// A Generator mirrors ContentDir into OutputDir: every *.md file becomes an
// .html page rendered through a single template whose literal {{ Title }}
// and {{ Content }} placeholders are replaced with the page title and the
// converted body. Files from StaticDir are copied alongside.
//
// Pages are converted concurrently. A failing page is reported with its path
// and never affects the output of its siblings.
package site
