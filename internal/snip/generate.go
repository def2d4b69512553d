package snip

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log/v2"
	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/snip/internal/catalog"
	"go.followtheprocess.codes/snip/internal/har"
	"go.followtheprocess.codes/snip/internal/render"
	"go.followtheprocess.codes/snip/internal/spec"
)

// Styles.
const (
	// dimmed is the style used for printing informational content like the
	// chosen client next to the preview.
	dimmed = hue.BrightBlack | hue.Italic

	// sepWidth is the width in characters of the horizontal line separator
	// above the previewed snippet.
	sepWidth = 80
)

// GenerateOptions are the flags passed to the generate subcommand.
type GenerateOptions struct {
	// Request is the name of the request to generate a snippet for, may be
	// empty if the file contains exactly one request.
	Request string

	// Target and Client pre-seed the selection, skipping the interactive
	// flow entirely. Either both or neither must be set.
	Target string

	// Client, see Target.
	Client string

	// Catalog is the path to a user catalog file extending the builtin
	// targets, empty means builtin only.
	Catalog string

	// Copy additionally puts the generated snippet on the clipboard.
	Copy bool

	// Debug enables debug logging.
	Debug bool
}

// Validate reports whether the GenerateOptions is valid, returning a
// non-nil error if it's not.
func (g GenerateOptions) Validate() error {
	if (g.Target == "") != (g.Client == "") {
		return errors.New("--target and --client must be given together")
	}

	return nil
}

// Generate implements the generate subcommand: the full
// resolve → convert → select → render → preview pipeline.
//
// Missing input (no file argument and nothing piped in, or a document with
// no requests) is a silent no-op. Import failures propagate to the caller.
// Render and preview failures are reported to the user but do not fail the
// command.
func (s *Snip) Generate(file string, options GenerateOptions) error {
	logger := s.logger.WithPrefix("generate")

	if err := options.Validate(); err != nil {
		return err
	}

	logger.Debug("Generate configuration", "options", fmt.Sprintf("%+v", options))

	parsed, ok, err := s.resolveSource(logger, file)
	if err != nil {
		return err
	}

	if !ok {
		logger.Debug("No request text to operate on")
		return nil
	}

	request, err := pickRequest(parsed, options.Request)
	if err != nil {
		return err
	}

	converted := har.Convert(request)

	resolved, err := s.loadCatalog(options.Catalog)
	if err != nil {
		return err
	}

	if len(resolved.Targets) == 0 {
		msg.Finfo(s.stdout, "No available targets to generate code for")
		return nil
	}

	target, client, ok, err := s.selection(resolved, options)
	if err != nil {
		return err
	}

	if !ok {
		logger.Debug("Selection dismissed, nothing to do")
		return nil
	}

	s.recorder.Record(target.Key, client.Key)

	snippet, err := s.renderFor(converted, target.Key, client.Key, render.Options{})
	if err != nil {
		logger.Error("Could not render snippet", "target", target.Key, "client", client.Key, "err", err)
		msg.Ferror(s.stderr, "could not render snippet for %s/%s: %v", target.Key, client.Key, err)

		return nil
	}

	s.lastSnippet = snippet

	if err := s.preview(target, client, snippet); err != nil {
		logger.Error("Could not preview snippet", "err", err)
		msg.Ferror(s.stderr, "could not preview snippet: %v", err)

		return nil
	}

	if options.Copy {
		if err := s.clipboard.Write(snippet); err != nil {
			return fmt.Errorf("could not copy snippet to clipboard: %w", err)
		}

		msg.Fsuccess(s.stdout, "Copied %s/%s snippet to clipboard", target.Key, client.Key)
	}

	return nil
}

// CopyLast copies the most recently generated snippet to the clipboard.
//
// If nothing has been generated yet it is a no-op.
func (s *Snip) CopyLast() error {
	if s.lastSnippet == "" {
		s.logger.Debug("No snippet generated yet, nothing to copy")
		return nil
	}

	if err := s.clipboard.Write(s.lastSnippet); err != nil {
		return fmt.Errorf("could not copy snippet to clipboard: %w", err)
	}

	msg.Fsuccess(s.stdout, "Copied snippet to clipboard")

	return nil
}

// selection resolves the (target, client) pair, either pre-seeded from the
// flags or by driving the interactive flow.
func (s *Snip) selection(
	resolved catalog.Catalog,
	options GenerateOptions,
) (catalog.Target, catalog.Client, bool, error) {
	if options.Target != "" {
		target, client, ok := resolved.Find(options.Target, options.Client)
		if !ok {
			return catalog.Target{}, catalog.Client{}, false, fmt.Errorf(
				"no client %s/%s in the catalog",
				options.Target,
				options.Client,
			)
		}

		return target, client, true, nil
	}

	return s.selector.Select(resolved)
}

// renderFor renders the interchange request for the given pair, applying
// the scheme workaround when the engine insists on protocol qualified URLs:
// validation sees a http:// prefixed URL while the rendered output embeds
// the original bare one.
func (s *Snip) renderFor(
	request har.Request,
	targetKey, clientKey string,
	options render.Options,
) (string, error) {
	engine, err := s.registry.Lookup(targetKey, clientKey)
	if err != nil {
		return "", err
	}

	if engine.RequiresScheme() && !hasScheme(request.URL) {
		options.FullURL = request.URL
		request.URL = "http://" + request.URL
	}

	return engine.Render(request, options)
}

// preview renders the generated snippet to stdout.
func (s *Snip) preview(target catalog.Target, client catalog.Client, snippet string) error {
	header := fmt.Sprintf(
		"\n%s: %s\n%s\n",
		hue.Bold.Text(target.Title),
		dimmed.Text(client.Title),
		strings.Repeat("─", sepWidth),
	)

	if _, err := io.WriteString(s.stdout, header); err != nil {
		return err
	}

	if _, err := io.WriteString(s.stdout, snippet); err != nil {
		return err
	}

	if !strings.HasSuffix(snippet, "\n") {
		if _, err := io.WriteString(s.stdout, "\n"); err != nil {
			return err
		}
	}

	return nil
}

// resolveSource reads and imports the request document named by file, or
// whatever was piped on stdin when file is empty.
//
// ok reports whether there was any input at all: a missing file argument
// with an empty stdin is not an error, there is simply nothing to do.
func (s *Snip) resolveSource(logger *log.Logger, file string) (spec.File, bool, error) {
	var (
		source io.Reader
		name   = file
	)

	if file == "" {
		contents, err := io.ReadAll(s.stdin)
		if err != nil {
			return spec.File{}, false, fmt.Errorf("could not read stdin: %w", err)
		}

		if len(bytes.TrimSpace(contents)) == 0 {
			return spec.File{}, false, nil
		}

		source = bytes.NewReader(contents)
		name = "stdin"
	} else {
		f, err := os.Open(file)
		if err != nil {
			return spec.File{}, false, fmt.Errorf("could not open file: %w", err)
		}
		defer f.Close()

		source = f
	}

	importer, err := importerFor(file)
	if err != nil {
		return spec.File{}, false, err
	}

	logger.Debug("Importing request document", "source", name)

	parsed, err := importer.Import(source)
	if err != nil {
		return spec.File{}, false, err
	}

	if len(parsed.Requests) == 0 {
		logger.Debug("Document contains no requests", "source", name)
		return spec.File{}, false, nil
	}

	if parsed.Name == "" {
		parsed.Name = name
	}

	return parsed, true, nil
}
