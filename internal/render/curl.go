package render

import (
	_ "embed"
	"fmt"
	"net/url"
	"strings"
	"text/template"

	"go.followtheprocess.codes/snip/internal/har"
)

//go:embed templates/curl.txt.tmpl
var curlTempl string

// shellQuoter escapes single quotes for embedding in a single-quoted shell
// string.
//
//nolint:gochecknoglobals // Having the replacer as a global means it's built only once
var shellQuoter = strings.NewReplacer("'", `'"'"'`)

// curlFunctions are custom template functions available in the curl template.
//
//nolint:gochecknoglobals // This has to be here
var curlFunctions = template.FuncMap{
	"shellquote": shellQuoter.Replace,
}

// curlTemplate is the parsed curl command line text/template.
//
//nolint:gochecknoglobals // Having the template as a global means it's parsed only once
var curlTemplate = template.Must(template.New("curl").Funcs(curlFunctions).Parse(curlTempl))

// curlData is the data the curl template is executed against.
type curlData struct {
	// Method is the HTTP verb.
	Method string

	// URL is the URL embedded in the command.
	URL string

	// Sep separates command line arguments, either a plain space or an
	// escaped newline continuation.
	Sep string

	// Body is the post data text, empty if the request has none.
	Body string

	// Headers are the exploded request headers.
	Headers []har.Header
}

// CurlEngine is an [Engine] that renders interchange requests as curl
// commands.
type CurlEngine struct{}

// RequiresScheme implements [Engine] for [CurlEngine].
//
// The URL validation below insists on an absolute, protocol-qualified URL
// so callers must apply the scheme workaround for bare ones.
func (c CurlEngine) RequiresScheme() bool {
	return true
}

// Render implements [Engine] for [CurlEngine] and renders the given request
// as a curl command.
func (c CurlEngine) Render(request har.Request, options Options) (string, error) {
	if _, err := url.ParseRequestURI(request.URL); err != nil {
		return "", fmt.Errorf("invalid request URL: %w", err)
	}

	data := curlData{
		Method:  request.Method,
		URL:     request.URL,
		Headers: request.Headers,
		Sep:     " \\\n  ",
	}

	if options.FullURL != "" {
		data.URL = options.FullURL
	}

	if options.Compact {
		data.Sep = " "
	}

	if request.PostData != nil {
		data.Body = request.PostData.Text
	}

	builder := &strings.Builder{}
	if err := curlTemplate.Execute(builder, data); err != nil {
		return "", fmt.Errorf("could not render curl command: %w", err)
	}

	return builder.String(), nil
}
