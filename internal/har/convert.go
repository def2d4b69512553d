package har

import (
	"maps"
	"slices"
	"strings"

	"go.followtheprocess.codes/snip/internal/spec"
)

// Canonical header names, compared case-insensitively.
const (
	headerAuthorization = "authorization"
	headerContentType   = "content-type"
	headerCookie        = "cookie"
)

// flattener removes line ending characters from a string, joining the
// remaining segments with no separator, so that multi-line bodies collapse
// to a single line before being embedded in generated code.
//
//nolint:gochecknoglobals // Having the replacer as a global means it's built only once
var flattener = strings.NewReplacer(
	"\r", "",
	"\n", "",
)

// Convert transforms a [spec.Request] into its normalized interchange
// representation.
//
// Conversion never fails: headers with no values are skipped, cookie pairs
// and authorization values that don't match the expected shapes pass through
// unchanged, and a missing content-type falls back to [DefaultMimeType].
//
// The result is freshly derived on every call and shares no state with the
// input or with previous conversions.
func Convert(request spec.Request) Request {
	converted := Request{
		Method:  request.Method,
		URL:     EscapeURL(request.URL),
		Headers: convertHeaders(request.Headers),
	}

	converted.Cookies = parseCookies(converted.Headers)

	if request.Body != nil {
		converted.PostData = convertBody(request)
	}

	return converted
}

// convertHeaders explodes the header mapping into one interchange header per
// individual value.
//
// Names are visited in sorted order so the output is deterministic, values
// within a name keep their declared order. Authorization values are
// canonicalized through [NormalizeAuth].
func convertHeaders(headers map[string][]string) []Header {
	converted := make([]Header, 0, len(headers))

	for _, name := range slices.Sorted(maps.Keys(headers)) {
		for _, value := range headers[name] {
			if value == "" {
				continue
			}

			if strings.EqualFold(name, headerAuthorization) {
				value = NormalizeAuth(value)
			}

			converted = append(converted, Header{Name: name, Value: value})
		}
	}

	return converted
}

// parseCookies derives the cookie list from the first header named cookie,
// splitting its value on ';' and each pair on the first '='.
//
// The cookie header itself is left in place, cookies are a derived view.
func parseCookies(headers []Header) []Cookie {
	for _, header := range headers {
		if !strings.EqualFold(header.Name, headerCookie) {
			continue
		}

		cookies := []Cookie{}

		for pair := range strings.SplitSeq(header.Value, ";") {
			name, value, _ := strings.Cut(pair, "=")

			name = strings.TrimSpace(name)
			value = strings.TrimSpace(value)

			if name == "" && value == "" {
				// A dangling ';' is no cookie at all
				continue
			}

			cookies = append(cookies, Cookie{Name: name, Value: value})
		}

		return cookies
	}

	return []Cookie{}
}

// convertBody resolves the MIME type and content of the request body.
//
// Textual bodies are flattened to a single line, binary bodies are carried
// through verbatim.
func convertBody(request spec.Request) *PostData {
	data := &PostData{MimeType: DefaultMimeType}

	for name, values := range request.Headers {
		if strings.EqualFold(name, headerContentType) && len(values) > 0 && values[0] != "" {
			data.MimeType = values[0]
			break
		}
	}

	if text, ok := request.Body.Text(); ok {
		data.Text = flattener.Replace(text)
	} else {
		data.Text = request.Body.String()
	}

	return data
}
