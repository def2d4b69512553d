package snip

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.followtheprocess.codes/snip/internal/format"
	"go.followtheprocess.codes/snip/internal/har"
	"golang.org/x/sync/errgroup"
)

// ExportOptions are the flags passed to the export subcommand.
type ExportOptions struct {
	// Format is the output format of the interchange documents.
	Format string

	// Debug enables debug logging.
	Debug bool
}

// Validate reports whether the ExportOptions is valid, returning a non-nil
// error if it's not.
func (e ExportOptions) Validate() error {
	switch format := e.Format; format {
	case "json", "yaml", "toml":
		return nil
	default:
		return fmt.Errorf("invalid option for --format %q, allowed values are 'json', 'yaml', 'toml'", format)
	}
}

// Export implements the export subcommand: convert every request in the
// given path (a request document, or a directory scanned recursively for
// them) and write the interchange representations to stdout.
func (s *Snip) Export(ctx context.Context, path string, options ExportOptions) error {
	logger := s.logger.WithPrefix("export").With("path", path)
	logger.Debug("Exporting path")

	if err := options.Validate(); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("could not get path info: %w", err)
	}

	var paths []string

	if info.IsDir() {
		logger.Debug("Path is a directory")

		err = filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			switch filepath.Ext(path) {
			case ".json", ".yaml", ".yml":
				paths = append(paths, path)
			}

			return nil
		})
		if err != nil {
			return fmt.Errorf("could not walk %s: %w", path, err)
		}

		slices.Sort(paths)
	} else {
		logger.Debug("Path is a file")

		paths = []string{path}
	}

	logger.Debug("Exporting request documents given by path", "number", len(paths))

	exported := make([]string, len(paths))

	group, _ := errgroup.WithContext(ctx)

	for i, path := range paths {
		group.Go(func() error {
			out, err := s.exportFile(path, options)
			if err != nil {
				return err
			}

			exported[i] = out

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for _, out := range exported {
		fmt.Fprint(s.stdout, out)
	}

	return nil
}

// exportFile converts every request in a single document and renders them
// in the configured format.
func (s *Snip) exportFile(path string, options ExportOptions) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("could not open file: %w", err)
	}
	defer f.Close()

	importer, err := importerFor(path)
	if err != nil {
		return "", err
	}

	parsed, err := importer.Import(f)
	if err != nil {
		return "", fmt.Errorf("could not import %s: %w", path, err)
	}

	var exporter format.Exporter

	switch options.Format {
	case "json":
		exporter = format.JSONExporter{}
	case "yaml":
		exporter = format.YAMLExporter{}
	case "toml":
		exporter = format.TOMLExporter{}
	}

	buf := &bytes.Buffer{}

	for _, request := range parsed.Requests {
		if err := exporter.Export(buf, har.Convert(request)); err != nil {
			return "", fmt.Errorf("could not export request %s from %s: %w", request.Name, path, err)
		}
	}

	return buf.String(), nil
}
