package snip_test

import (
	"path/filepath"
	"strings"
	"testing"

	"go.followtheprocess.codes/snip/internal/snip"
	"go.followtheprocess.codes/test"
	"go.uber.org/goleak"
)

func TestExportFile(t *testing.T) {
	app, stdout, _, _, _ := newTestApp(strings.NewReader(""))

	options := snip.ExportOptions{Format: "json"}

	err := app.Export(t.Context(), filepath.Join("testdata", "simple.json"), options)
	test.Ok(t, err)

	out := stdout.String()
	test.True(t, strings.Contains(out, `"method": "GET"`))
	test.True(t, strings.Contains(out, `"url": "https://example.com/api/items/1"`))
	test.True(t, strings.Contains(out, `"name": "Accept"`))
}

func TestExportDir(t *testing.T) {
	defer goleak.VerifyNone(t)

	app, stdout, _, _, _ := newTestApp(strings.NewReader(""))

	options := snip.ExportOptions{Format: "json"}

	err := app.Export(t.Context(), filepath.Join("testdata", "export"), options)
	test.Ok(t, err)

	out := stdout.String()

	// a.json (1 request) then b.json (2 requests), in path order
	test.Equal(t, strings.Count(out, `"method"`), 3)
	test.True(t, strings.Index(out, "items/1") < strings.Index(out, `"POST"`))
}

func TestExportYAML(t *testing.T) {
	app, stdout, _, _, _ := newTestApp(strings.NewReader(""))

	options := snip.ExportOptions{Format: "yaml"}

	err := app.Export(t.Context(), filepath.Join("testdata", "simple.json"), options)
	test.Ok(t, err)

	out := stdout.String()
	test.True(t, strings.Contains(out, "method: GET"))
	test.True(t, strings.Contains(out, "url: https://example.com/api/items/1"))
}

func TestExportTOML(t *testing.T) {
	app, stdout, _, _, _ := newTestApp(strings.NewReader(""))

	options := snip.ExportOptions{Format: "toml"}

	err := app.Export(t.Context(), filepath.Join("testdata", "simple.json"), options)
	test.Ok(t, err)

	out := stdout.String()
	test.True(t, strings.Contains(out, `method = "GET"`))
	test.True(t, strings.Contains(out, `url = "https://example.com/api/items/1"`))
}

func TestExportInvalidFormat(t *testing.T) {
	app, _, _, _, _ := newTestApp(strings.NewReader(""))

	err := app.Export(t.Context(), filepath.Join("testdata", "simple.json"), snip.ExportOptions{Format: "postman"})
	test.Err(t, err)
}

func TestExportMissingPath(t *testing.T) {
	app, _, _, _, _ := newTestApp(strings.NewReader(""))

	err := app.Export(t.Context(), filepath.Join("testdata", "nope"), snip.ExportOptions{Format: "json"})
	test.Err(t, err)
}

func TestExportOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string // Name of the test case
		format  string // The --format value
		wantErr bool   // Whether Validate should return an error
	}{
		{name: "json", format: "json", wantErr: false},
		{name: "yaml", format: "yaml", wantErr: false},
		{name: "toml", format: "toml", wantErr: false},
		{name: "empty", format: "", wantErr: true},
		{name: "unknown", format: "postman", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := snip.ExportOptions{Format: tt.format}.Validate()
			if tt.wantErr {
				test.Err(t, err)
			} else {
				test.Ok(t, err)
			}
		})
	}
}
