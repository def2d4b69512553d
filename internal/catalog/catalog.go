// Package catalog describes the output capability catalog: the set of
// targets (languages/ecosystems) and, within each target, the clients
// (libraries/tools) that snip can generate snippets for.
//
// The builtin catalog ships with snip itself. Users may extend it with a
// TOML catalog file declaring extra targets and clients whose snippets are
// rendered from an inline template.
package catalog

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Target is an output ecosystem/language for generated code.
type Target struct {
	// Key is the stable identifier of the target e.g. "shell".
	Key string `toml:"key"`

	// Title is the human readable name of the target e.g. "Shell".
	Title string `toml:"title"`

	// Clients are the libraries/tools within this target.
	Clients []Client `toml:"client"`
}

// Client is a specific library/tool within a target used to perform the
// request in generated code.
type Client struct {
	// Key is the stable identifier of the client e.g. "curl".
	Key string `toml:"key"`

	// Title is the human readable name of the client e.g. "cURL".
	Title string `toml:"title"`

	// Description is an optional one line description shown during selection.
	Description string `toml:"description"`

	// Link is an optional URL to the client's documentation.
	Link string `toml:"link"`

	// Template is the inline text/template rendering a snippet for this
	// client, executed against the interchange request.
	//
	// Empty for builtin clients, which render through a dedicated engine.
	Template string `toml:"template"`
}

// Catalog is an ordered list of targets.
type Catalog struct {
	// Targets available for selection, in display order.
	Targets []Target `toml:"target"`
}

// Builtin returns the catalog that ships with snip.
func Builtin() Catalog {
	return Catalog{
		Targets: []Target{
			{
				Key:   "shell",
				Title: "Shell",
				Clients: []Client{
					{
						Key:         "curl",
						Title:       "cURL",
						Description: "Transfer data with URLs, everywhere",
						Link:        "https://curl.se",
					},
				},
			},
		},
	}
}

// Load reads a user catalog from a TOML file at path.
func Load(path string) (Catalog, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("could not read catalog file: %w", err)
	}

	var catalog Catalog

	if err := toml.Unmarshal(contents, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("could not decode catalog %s: %w", path, err)
	}

	for _, target := range catalog.Targets {
		if target.Key == "" {
			return Catalog{}, fmt.Errorf("catalog %s contains a target with no key", path)
		}

		for _, client := range target.Clients {
			if client.Key == "" {
				return Catalog{}, fmt.Errorf("catalog %s: target %s contains a client with no key", path, target.Key)
			}
		}
	}

	return catalog, nil
}

// Merge combines the base catalog with an extension.
//
// Targets in extra with a key already in base replace the base target
// entirely, new targets are appended in order.
func Merge(base, extra Catalog) Catalog {
	merged := Catalog{Targets: make([]Target, 0, len(base.Targets)+len(extra.Targets))}
	merged.Targets = append(merged.Targets, base.Targets...)

	for _, target := range extra.Targets {
		if i := indexOf(merged.Targets, target.Key); i >= 0 {
			merged.Targets[i] = target
		} else {
			merged.Targets = append(merged.Targets, target)
		}
	}

	return merged
}

// Find returns the (target, client) pair with the given keys, and a boolean
// reporting whether both were present.
func (c Catalog) Find(targetKey, clientKey string) (Target, Client, bool) {
	if i := indexOf(c.Targets, targetKey); i >= 0 {
		target := c.Targets[i]

		for _, client := range target.Clients {
			if client.Key == clientKey {
				return target, client, true
			}
		}
	}

	return Target{}, Client{}, false
}

// indexOf returns the index of the target with the given key, or -1.
func indexOf(targets []Target, key string) int {
	for i, target := range targets {
		if target.Key == key {
			return i
		}
	}

	return -1
}
