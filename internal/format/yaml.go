package format

import (
	"fmt"
	"io"

	"go.followtheprocess.codes/snip/internal/har"
	"go.followtheprocess.codes/snip/internal/spec"
	"go.yaml.in/yaml/v4"
)

const yamlIndent = 2

// YAMLExporter is an [Exporter] that writes interchange requests as YAML
// documents.
type YAMLExporter struct{}

// Export implements [Exporter] for [YAMLExporter].
func (y YAMLExporter) Export(w io.Writer, request har.Request) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	return encoder.Encode(request)
}

// YAMLImporter is an [Importer] that reads YAML request documents into the
// equivalent [spec.File].
type YAMLImporter struct{}

// Import implements [Importer] for [YAMLImporter].
func (y YAMLImporter) Import(r io.Reader) (spec.File, error) {
	var file spec.File

	decoder := yaml.NewDecoder(r)

	if err := decoder.Decode(&file); err != nil {
		return spec.File{}, fmt.Errorf("could not decode YAML: %w", err)
	}

	return file, nil
}
