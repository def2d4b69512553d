package snip

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log/v2"
	"go.followtheprocess.codes/snip/internal/catalog"
	"go.followtheprocess.codes/snip/internal/picker"
)

// Clipboard is the system clipboard as seen by snip.
type Clipboard interface {
	// Write puts text on the clipboard.
	Write(text string) error
}

// systemClipboard is the real [Clipboard].
type systemClipboard struct{}

// Write implements [Clipboard] for [systemClipboard].
func (systemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}

// Selector drives a target/client selection flow over a catalog to a
// terminal state.
//
// ok reports whether the flow completed with an accepted pair, a dismissed
// flow returns ok == false with a nil error. Implementations must not be
// invoked with an empty catalog, the orchestrator reports unavailability
// before ever constructing a flow.
type Selector interface {
	Select(c catalog.Catalog) (target catalog.Target, client catalog.Client, ok bool, err error)
}

// interactiveSelector is the real [Selector], prompting on the terminal.
type interactiveSelector struct{}

// Select implements [Selector] for [interactiveSelector].
func (interactiveSelector) Select(c catalog.Catalog) (catalog.Target, catalog.Client, bool, error) {
	p, err := picker.New(c)
	if err != nil {
		return catalog.Target{}, catalog.Client{}, false, err
	}

	if err := picker.Run(p); err != nil {
		return catalog.Target{}, catalog.Client{}, false, err
	}

	target, client, ok := p.Selection()

	return target, client, ok, nil
}

// Recorder records a usage event for a completed snippet generation. It is
// invoked exactly once per completed selection, never on cancellation.
type Recorder interface {
	Record(targetKey, clientKey string)
}

// loggingRecorder is the default [Recorder], it simply debug logs the event.
type loggingRecorder struct {
	logger *log.Logger
}

// Record implements [Recorder] for [loggingRecorder].
func (l loggingRecorder) Record(targetKey, clientKey string) {
	l.logger.Debug("Generated snippet", "target", targetKey, "client", clientKey)
}
