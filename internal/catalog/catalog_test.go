package catalog_test

import (
	"path/filepath"
	"testing"

	"go.followtheprocess.codes/snip/internal/catalog"
	"go.followtheprocess.codes/test"
)

func TestBuiltin(t *testing.T) {
	builtin := catalog.Builtin()

	test.True(t, len(builtin.Targets) > 0)

	target, client, ok := builtin.Find("shell", "curl")
	test.True(t, ok)
	test.Equal(t, target.Key, "shell")
	test.Equal(t, client.Key, "curl")
}

func TestLoad(t *testing.T) {
	loaded, err := catalog.Load(filepath.Join("testdata", "catalog.toml"))
	test.Ok(t, err)

	test.Equal(t, len(loaded.Targets), 2)

	target, client, ok := loaded.Find("python", "requests")
	test.True(t, ok)
	test.Equal(t, target.Title, "Python")
	test.Equal(t, client.Title, "Requests")
	test.True(t, client.Template != "")

	_, _, ok = loaded.Find("python", "missing")
	test.False(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join("testdata", "nope.toml"))
	test.Err(t, err)
}

func TestLoadMissingKeys(t *testing.T) {
	_, err := catalog.Load(filepath.Join("testdata", "nokey.toml"))
	test.Err(t, err)
}

func TestMerge(t *testing.T) {
	base := catalog.Builtin()
	extra := catalog.Catalog{
		Targets: []catalog.Target{
			{
				Key:   "shell",
				Title: "Shell (custom)",
				Clients: []catalog.Client{
					{Key: "wget", Title: "Wget", Template: "wget {{ .URL }}"},
				},
			},
			{
				Key:   "go",
				Title: "Go",
				Clients: []catalog.Client{
					{Key: "native", Title: "net/http", Template: "http.Get({{ printf \"%q\" .URL }})"},
				},
			},
		},
	}

	merged := catalog.Merge(base, extra)

	// shell replaced wholesale, go appended
	test.Equal(t, len(merged.Targets), 2)
	test.Equal(t, merged.Targets[0].Title, "Shell (custom)")

	_, _, ok := merged.Find("shell", "curl")
	test.False(t, ok)

	_, client, ok := merged.Find("go", "native")
	test.True(t, ok)
	test.Equal(t, client.Key, "native")
}

func TestFindMissing(t *testing.T) {
	builtin := catalog.Builtin()

	_, _, ok := builtin.Find("cobol", "anything")
	test.False(t, ok)
}
