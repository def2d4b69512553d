// Package snip implements the functionality of the program, the CLI in
// package cmd is simply the entrypoint to exported functions and methods in
// this package.
//
// The heart of it is the orchestrator: resolve a request description,
// convert it to the interchange representation, drive the target/client
// selection, and hand the result to a rendering engine, the preview surface
// or the clipboard.
package snip

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log/v2"
	"go.followtheprocess.codes/snip/internal/catalog"
	"go.followtheprocess.codes/snip/internal/format"
	"go.followtheprocess.codes/snip/internal/render"
	"go.followtheprocess.codes/snip/internal/spec"
)

// Snip represents the snip program.
type Snip struct {
	stdin       io.Reader        // Piped request documents are read from here
	stdout      io.Writer        // Normal program output is written here
	stderr      io.Writer        // Logs and errors are written here
	logger      *log.Logger      // The logger for the application
	clipboard   Clipboard        // The system clipboard
	selector    Selector         // Drives the target/client selection flow
	recorder    Recorder         // Usage event recording
	registry    *render.Registry // Snippet rendering engines
	base        catalog.Catalog  // Base capability catalog, builtin unless swapped
	lastSnippet string           // Most recently generated snippet, replace on each generate
}

// Option is a functional option for configuring a [Snip], mostly used to
// swap the interactive collaborators out in tests.
type Option func(*Snip)

// WithClipboard swaps the system clipboard.
func WithClipboard(clipboard Clipboard) Option {
	return func(s *Snip) {
		s.clipboard = clipboard
	}
}

// WithSelector swaps the interactive selection driver.
func WithSelector(selector Selector) Option {
	return func(s *Snip) {
		s.selector = selector
	}
}

// WithRecorder swaps the usage event recorder.
func WithRecorder(recorder Recorder) Option {
	return func(s *Snip) {
		s.recorder = recorder
	}
}

// WithBaseCatalog replaces the builtin capability catalog as the base that
// any user catalog file is merged on top of.
func WithBaseCatalog(base catalog.Catalog) Option {
	return func(s *Snip) {
		s.base = base
	}
}

// New returns a new [Snip].
func New(debug bool, version string, stdin io.Reader, stdout, stderr io.Writer, options ...Option) *Snip {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(stderr, log.Options{
		TimeFormat:      time.RFC3339Nano,
		Level:           level,
		Prefix:          "snip",
		ReportTimestamp: true,
	})

	logger.SetStyles(logStyles())
	logger.Debug("Configured application", "version", version)

	snip := &Snip{
		stdin:     stdin,
		stdout:    stdout,
		stderr:    stderr,
		logger:    logger,
		clipboard: systemClipboard{},
		registry:  render.NewRegistry(),
		base:      catalog.Builtin(),
	}

	snip.selector = interactiveSelector{}
	snip.recorder = loggingRecorder{logger: logger}

	for _, option := range options {
		option(snip)
	}

	return snip
}

// Close releases any resources held by the program, including the snippet
// retained for a later copy.
func (s *Snip) Close() error {
	s.lastSnippet = ""
	return nil
}

// loadCatalog resolves the effective capability catalog: the builtin one,
// extended by the user catalog file if a path was given.
//
// User clients declaring an inline template get an engine registered for
// their (target, client) pair as a side effect.
func (s *Snip) loadCatalog(path string) (catalog.Catalog, error) {
	resolved := s.base

	if path != "" {
		extra, err := catalog.Load(path)
		if err != nil {
			return catalog.Catalog{}, err
		}

		resolved = catalog.Merge(resolved, extra)
	}

	for _, target := range resolved.Targets {
		for _, client := range target.Clients {
			if client.Template == "" {
				continue
			}

			engine, err := render.NewTemplateEngine(target.Key+"/"+client.Key, client.Template)
			if err != nil {
				return catalog.Catalog{}, err
			}

			s.registry.Register(target.Key, client.Key, engine)
		}
	}

	return resolved, nil
}

// importerFor picks the importer for a request document based on its file
// extension. Data piped via stdin is assumed to be JSON.
func importerFor(path string) (format.Importer, error) {
	switch filepath.Ext(path) {
	case ".json", "":
		return format.JSONImporter{}, nil
	case ".yaml", ".yml":
		return format.YAMLImporter{}, nil
	default:
		return nil, fmt.Errorf("cannot import %s: unsupported format %q", path, filepath.Ext(path))
	}
}

// pickRequest chooses the request to operate on from a file.
//
// A named request wins, else a file with exactly one request is
// unambiguous. Anything else is an error naming the candidates.
func pickRequest(file spec.File, name string) (spec.Request, error) {
	if name != "" {
		request, ok := file.Request(name)
		if !ok {
			return spec.Request{}, fmt.Errorf("no request named %q in %s", name, file.Name)
		}

		return request, nil
	}

	if len(file.Requests) == 1 {
		return file.Requests[0], nil
	}

	names := make([]string, 0, len(file.Requests))
	for i, request := range file.Requests {
		names = append(names, request.DisplayName(i))
	}

	return spec.Request{}, fmt.Errorf(
		"file contains %d requests, pick one with --request: %s",
		len(file.Requests),
		strings.Join(names, ", "),
	)
}

// hasScheme reports whether the URL is protocol qualified.
func hasScheme(url string) bool {
	return strings.Contains(url, "://")
}
