// Package render provides the snippet rendering seam: the Engine interface
// that turns an interchange request into source code text for a particular
// (target, client) pair, a registry keyed by those pairs, and the builtin
// engines.
//
// The per-language template logic of external engines is out of scope here,
// snip only ever talks to an Engine.
package render

import (
	"errors"
	"fmt"

	"go.followtheprocess.codes/snip/internal/har"
)

// ErrNoEngine is returned by [Registry.Lookup] when no engine is registered
// for the requested (target, client) pair.
var ErrNoEngine = errors.New("no renderer registered")

// Options adjust how an [Engine] renders a snippet.
type Options struct {
	// FullURL, if set, overrides the URL embedded in the rendered output.
	//
	// The request URL is still the one validated, this only changes what
	// ends up in the snippet text. Used by the scheme workaround for
	// protocol-less URLs.
	FullURL string

	// Compact disables multi-line formatting, rendering the snippet on a
	// single line where the engine supports it.
	Compact bool
}

// Engine renders an interchange request as a code snippet.
//
// Implementations are expected to be deterministic for a given
// (request, options) input.
type Engine interface {
	// Render produces the snippet text for the given request.
	Render(request har.Request, options Options) (string, error)

	// RequiresScheme reports whether the engine's internal validation
	// insists on a protocol-qualified URL. Callers use this to decide
	// whether the scheme workaround is needed for bare URLs.
	RequiresScheme() bool
}

// Registry maps (target, client) key pairs to their rendering engines.
type Registry struct {
	engines map[string]Engine
}

// NewRegistry returns a [Registry] pre-populated with the builtin engines.
func NewRegistry() *Registry {
	registry := &Registry{engines: make(map[string]Engine)}
	registry.Register("shell", "curl", CurlEngine{})

	return registry
}

// Register adds an engine for the given (target, client) pair, replacing
// any existing registration.
func (r *Registry) Register(targetKey, clientKey string, engine Engine) {
	r.engines[registryKey(targetKey, clientKey)] = engine
}

// Lookup returns the engine registered for the given pair.
//
// It returns an error wrapping [ErrNoEngine] if there isn't one.
func (r *Registry) Lookup(targetKey, clientKey string) (Engine, error) {
	engine, ok := r.engines[registryKey(targetKey, clientKey)]
	if !ok {
		return nil, fmt.Errorf("%w for %s/%s", ErrNoEngine, targetKey, clientKey)
	}

	return engine, nil
}

// registryKey builds the map key for a (target, client) pair.
func registryKey(targetKey, clientKey string) string {
	return targetKey + "/" + clientKey
}
