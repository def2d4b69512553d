// Package har provides the interchange request model and the conversion
// from a [spec.Request] into it.
//
// The model is a subset of the request object from the HTTP Archive (HAR)
// 1.2 format, which is the shape snippet rendering engines consume. The
// conversion is a pure function: it performs no I/O, holds no state, and
// never fails; malformed input is tolerated by omission, not by error.
package har

// Request is the normalized interchange representation of a HTTP request,
// modelled after the HAR 1.2 request object.
type Request struct {
	// Method is the HTTP verb, carried over verbatim.
	Method string `json:"method" toml:"method" yaml:"method"`

	// URL is the request URL, percent-encoded for unsafe characters.
	URL string `json:"url" toml:"url" yaml:"url"`

	// Headers is one entry per (name, individual value) pair. A multi-value
	// header explodes into multiple entries, preserving value order.
	Headers []Header `json:"headers" toml:"headers" yaml:"headers"`

	// Cookies is the list of cookies derived from the cookie header. The
	// cookie header itself remains in Headers, this is an additional view.
	Cookies []Cookie `json:"cookies" toml:"cookies" yaml:"cookies"`

	// PostData is the request body, absent if the request has none.
	PostData *PostData `json:"postData,omitempty" toml:"postData,omitempty" yaml:"postData,omitempty"`
}

// Header is a single (name, value) header pair.
type Header struct {
	Name  string `json:"name" toml:"name" yaml:"name"`
	Value string `json:"value" toml:"value" yaml:"value"`
}

// Cookie is a single (name, value) cookie pair.
type Cookie struct {
	Name  string `json:"name" toml:"name" yaml:"name"`
	Value string `json:"value" toml:"value" yaml:"value"`
}

// PostData is the request body along with its MIME type.
type PostData struct {
	// MimeType is the media type of the body, from the content-type header
	// if present, [DefaultMimeType] otherwise.
	MimeType string `json:"mimeType" toml:"mimeType" yaml:"mimeType"`

	// Text is the body content. Multi-line textual bodies are flattened to
	// a single line, binary bodies are carried verbatim.
	Text string `json:"text" toml:"text" yaml:"text"`
}

// DefaultMimeType is the MIME type assumed for a body when the request
// carries no content-type header.
const DefaultMimeType = "application/json"
