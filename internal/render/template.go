package render

import (
	"fmt"
	"strings"
	"text/template"

	"go.followtheprocess.codes/snip/internal/har"
)

// TemplateEngine is an [Engine] backed by a user supplied text/template,
// used for catalog clients declared in a user catalog file.
//
// The template is executed against the interchange [har.Request] with the
// effective URL substituted in, so user templates reference fields like
// {{ .Method }}, {{ .URL }}, {{ .Headers }} and {{ .PostData.Text }}.
type TemplateEngine struct {
	template *template.Template
}

// NewTemplateEngine compiles the given template text into a [TemplateEngine].
func NewTemplateEngine(name, text string) (TemplateEngine, error) {
	tmpl, err := template.New(name).Funcs(curlFunctions).Parse(text)
	if err != nil {
		return TemplateEngine{}, fmt.Errorf("could not parse template for %s: %w", name, err)
	}

	return TemplateEngine{template: tmpl}, nil
}

// RequiresScheme implements [Engine] for [TemplateEngine].
//
// User templates embed whatever URL they are given, no validation is
// imposed, so the scheme workaround is unnecessary.
func (t TemplateEngine) RequiresScheme() bool {
	return false
}

// Render implements [Engine] for [TemplateEngine] and executes the template
// against the given request.
func (t TemplateEngine) Render(request har.Request, options Options) (string, error) {
	if options.FullURL != "" {
		request.URL = options.FullURL
	}

	builder := &strings.Builder{}
	if err := t.template.Execute(builder, request); err != nil {
		return "", fmt.Errorf("could not render %s: %w", t.template.Name(), err)
	}

	return builder.String(), nil
}
