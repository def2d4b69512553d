package format

import (
	"encoding/json"
	"fmt"
	"io"

	"go.followtheprocess.codes/snip/internal/har"
	"go.followtheprocess.codes/snip/internal/spec"
)

// JSONExporter is an [Exporter] that writes interchange requests as JSON
// documents.
type JSONExporter struct{}

// Export implements [Exporter] for [JSONExporter].
func (j JSONExporter) Export(w io.Writer, request har.Request) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(request)
}

// JSONImporter is an [Importer] that reads JSON request documents into the
// equivalent [spec.File].
type JSONImporter struct{}

// Import implements [Importer] for [JSONImporter].
func (j JSONImporter) Import(r io.Reader) (spec.File, error) {
	var file spec.File

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&file); err != nil {
		return spec.File{}, fmt.Errorf("could not decode JSON: %w", err)
	}

	return file, nil
}
