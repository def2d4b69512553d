package format

import (
	"io"

	"github.com/BurntSushi/toml"
	"go.followtheprocess.codes/snip/internal/har"
)

// TOMLExporter is an [Exporter] that writes interchange requests as TOML
// documents.
type TOMLExporter struct{}

// Export implements [Exporter] for [TOMLExporter].
func (t TOMLExporter) Export(w io.Writer, request har.Request) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = ""

	return encoder.Encode(request)
}
