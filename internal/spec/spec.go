// Package spec provides the Request and File types, the concrete,
// canonical data structures describing a collection of HTTP request
// descriptions as handed over by an upstream parser or importer.
//
// The data structures here are complete and concrete, i.e. any variable
// interpolation has already been performed upstream and urls have been
// resolved. snip never parses raw HTTP text itself, it consumes this model
// and transforms it onwards into the interchange representation.
package spec

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// File represents a single document of request descriptions.
type File struct {
	// Name of the file (or a logical collection name if given)
	Name string `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`

	// The HTTP requests described in the file
	Requests []Request `json:"requests,omitempty" toml:"requests,omitempty" yaml:"requests,omitempty"`
}

// String implements [fmt.Stringer] for a [File].
func (f File) String() string {
	builder := &strings.Builder{}

	if f.Name != "" {
		fmt.Fprintf(builder, "@name = %s\n\n", f.Name)
	}

	for _, request := range f.Requests {
		builder.WriteString(request.String())
	}

	return builder.String()
}

// ContainsRequest reports whether a request with the given name is present
// in the file.
func (f File) ContainsRequest(name string) bool {
	for _, request := range f.Requests {
		if request.Name == name {
			return true
		}
	}

	return false
}

// Request returns the request with the given name, and a boolean reporting
// whether it was present in the file.
func (f File) Request(name string) (Request, bool) {
	for _, request := range f.Requests {
		if request.Name == name {
			return request, true
		}
	}

	return Request{}, false
}

// Request is a single HTTP request description as a canonical, fully
// resolved representation.
type Request struct {
	// Request headers. Header names map to one or more values, in the
	// order they were declared.
	Headers map[string][]string `json:"headers,omitempty" toml:"headers,omitempty" yaml:"headers,omitempty"`

	// Optional name, if empty the request is named after its index e.g. "#1"
	Name string `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`

	// Optional request comment
	Comment string `json:"comment,omitempty" toml:"comment,omitempty" yaml:"comment,omitempty"`

	// The HTTP method
	Method string `json:"method,omitempty" toml:"method,omitempty" yaml:"method,omitempty"`

	// The complete URL, not necessarily protocol qualified
	URL string `json:"url,omitempty" toml:"url,omitempty" yaml:"url,omitempty"`

	// Request body, if provided
	Body Body `json:"body,omitempty" toml:"body,omitempty" yaml:"body,omitempty"`
}

// DisplayName returns the name of the request if it has one, else a
// positional fallback like "#1" based on the (zero indexed) index given.
func (r Request) DisplayName(index int) string {
	if r.Name != "" {
		return r.Name
	}

	return fmt.Sprintf("#%d", index+1)
}

// String implements [fmt.Stringer] for a [Request] and formats
// the request in the canonical .http file style.
func (r Request) String() string {
	builder := &strings.Builder{}

	if r.Comment != "" {
		fmt.Fprintf(builder, "### %s\n", r.Comment)
	} else {
		builder.WriteString("###\n")
	}

	if r.Name != "" {
		fmt.Fprintf(builder, "# @name = %s\n", r.Name)
	}

	fmt.Fprintf(builder, "%s %s\n", r.Method, r.URL)

	for _, name := range slices.Sorted(maps.Keys(r.Headers)) {
		for _, value := range r.Headers[name] {
			fmt.Fprintf(builder, "%s: %s\n", name, value)
		}
	}

	if r.Body != nil {
		fmt.Fprintf(builder, "\n%s\n", r.Body.String())
	}

	return builder.String()
}
