// Package format provides mechanisms for moving request descriptions in and
// out of snip in structured formats.
//
// Importers read documents describing HTTP requests (the [spec.File] model),
// exporters write the normalized interchange representation produced by the
// converter. Raw HTTP text never passes through here, that concern belongs
// to an upstream parser behind the orchestrator's parser seam.
package format

import (
	"io"

	"go.followtheprocess.codes/snip/internal/har"
	"go.followtheprocess.codes/snip/internal/spec"
)

// Exporter is the interface defining a mechanism for writing an interchange
// request out in an external format.
type Exporter interface {
	// Export writes the interchange request to w.
	Export(w io.Writer, request har.Request) error
}

// Importer is the interface defining a mechanism for reading request
// descriptions into the canonical [spec.File] model.
type Importer interface {
	// Import reads the data from the external format into a [spec.File].
	Import(r io.Reader) (spec.File, error)
}
