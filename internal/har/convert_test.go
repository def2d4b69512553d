package har_test

import (
	"encoding/base64"
	"testing"

	"go.followtheprocess.codes/snip/internal/har"
	"go.followtheprocess.codes/snip/internal/spec"
	"go.followtheprocess.codes/test"
)

func TestConvertHeaders(t *testing.T) {
	tests := []struct {
		name    string       // Name of the test case
		request spec.Request // Input request
		want    []har.Header // Expected interchange headers
	}{
		{
			name:    "no headers",
			request: spec.Request{Method: "GET", URL: "https://example.com"},
			want:    nil,
		},
		{
			name: "single",
			request: spec.Request{
				Headers: map[string][]string{
					"Accept": {"application/json"},
				},
			},
			want: []har.Header{
				{Name: "Accept", Value: "application/json"},
			},
		},
		{
			name: "multi value explodes in order",
			request: spec.Request{
				Headers: map[string][]string{
					"Accept-Encoding": {"gzip", "br", "deflate"},
				},
			},
			want: []har.Header{
				{Name: "Accept-Encoding", Value: "gzip"},
				{Name: "Accept-Encoding", Value: "br"},
				{Name: "Accept-Encoding", Value: "deflate"},
			},
		},
		{
			name: "names sorted",
			request: spec.Request{
				Headers: map[string][]string{
					"User-Agent":   {"snip"},
					"Accept":       {"application/json"},
					"Content-Type": {"application/json"},
				},
			},
			want: []har.Header{
				{Name: "Accept", Value: "application/json"},
				{Name: "Content-Type", Value: "application/json"},
				{Name: "User-Agent", Value: "snip"},
			},
		},
		{
			name: "empty values skipped",
			request: spec.Request{
				Headers: map[string][]string{
					"X-Empty":  {""},
					"X-Mixed":  {"", "kept"},
					"X-Absent": nil,
					"Accept":   {"text/html"},
				},
			},
			want: []har.Header{
				{Name: "Accept", Value: "text/html"},
				{Name: "X-Mixed", Value: "kept"},
			},
		},
		{
			name: "authorization normalized",
			request: spec.Request{
				Headers: map[string][]string{
					"Authorization": {"Basic alice secret"},
				},
			},
			want: []har.Header{
				{
					Name:  "Authorization",
					Value: "Basic " + base64.StdEncoding.EncodeToString([]byte("alice:secret")),
				},
			},
		},
		{
			name: "authorization case insensitive",
			request: spec.Request{
				Headers: map[string][]string{
					"authorization": {"basic bob hunter2"},
				},
			},
			want: []har.Header{
				{
					Name:  "authorization",
					Value: "Basic " + base64.StdEncoding.EncodeToString([]byte("bob:hunter2")),
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := har.Convert(tt.request)

			test.Equal(t, len(got.Headers), len(tt.want))

			for i, header := range got.Headers {
				test.Equal(t, header, tt.want[i])
			}
		})
	}
}

func TestConvertCookies(t *testing.T) {
	tests := []struct {
		name    string       // Name of the test case
		request spec.Request // Input request
		want    []har.Cookie // Expected derived cookies
	}{
		{
			name:    "no cookie header",
			request: spec.Request{Headers: map[string][]string{"Accept": {"*/*"}}},
			want:    nil,
		},
		{
			name: "simple",
			request: spec.Request{
				Headers: map[string][]string{
					"Cookie": {"session=abc123"},
				},
			},
			want: []har.Cookie{
				{Name: "session", Value: "abc123"},
			},
		},
		{
			name: "whitespace trimmed and valueless pair",
			request: spec.Request{
				Headers: map[string][]string{
					"Cookie": {"a=1; b = 2 ; c"},
				},
			},
			want: []har.Cookie{
				{Name: "a", Value: "1"},
				{Name: "b", Value: "2"},
				{Name: "c", Value: ""},
			},
		},
		{
			name: "dangling separator skipped",
			request: spec.Request{
				Headers: map[string][]string{
					"Cookie": {"a=1;"},
				},
			},
			want: []har.Cookie{
				{Name: "a", Value: "1"},
			},
		},
		{
			name: "case insensitive header name",
			request: spec.Request{
				Headers: map[string][]string{
					"COOKIE": {"theme=dark"},
				},
			},
			want: []har.Cookie{
				{Name: "theme", Value: "dark"},
			},
		},
		{
			name: "value containing equals",
			request: spec.Request{
				Headers: map[string][]string{
					"Cookie": {"token=a=b=c"},
				},
			},
			want: []har.Cookie{
				{Name: "token", Value: "a=b=c"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := har.Convert(tt.request)

			test.Equal(t, len(got.Cookies), len(tt.want))

			for i, cookie := range got.Cookies {
				test.Equal(t, cookie, tt.want[i])
			}
		})
	}
}

func TestConvertCookieHeaderKept(t *testing.T) {
	// Deriving cookies must never remove the original cookie header
	request := spec.Request{
		Headers: map[string][]string{
			"Cookie": {"a=1; b=2"},
		},
	}

	got := har.Convert(request)

	test.Equal(t, len(got.Headers), 1)
	test.Equal(t, got.Headers[0], har.Header{Name: "Cookie", Value: "a=1; b=2"})
	test.Equal(t, len(got.Cookies), 2)
}

func TestConvertBody(t *testing.T) {
	tests := []struct {
		name    string        // Name of the test case
		request spec.Request  // Input request
		want    *har.PostData // Expected post data
	}{
		{
			name:    "absent",
			request: spec.Request{Method: "GET", URL: "https://example.com"},
			want:    nil,
		},
		{
			name: "defaults mime type",
			request: spec.Request{
				Body: spec.Body(`{"stuff":"here"}`),
			},
			want: &har.PostData{
				MimeType: "application/json",
				Text:     `{"stuff":"here"}`,
			},
		},
		{
			name: "content type respected",
			request: spec.Request{
				Headers: map[string][]string{
					"Content-Type": {"text/plain"},
				},
				Body: spec.Body("hello"),
			},
			want: &har.PostData{
				MimeType: "text/plain",
				Text:     "hello",
			},
		},
		{
			name: "content type case insensitive",
			request: spec.Request{
				Headers: map[string][]string{
					"content-type": {"application/xml"},
				},
				Body: spec.Body("<a/>"),
			},
			want: &har.PostData{
				MimeType: "application/xml",
				Text:     "<a/>",
			},
		},
		{
			name: "multi line flattened",
			request: spec.Request{
				Body: spec.Body("line1\nline2\n"),
			},
			want: &har.PostData{
				MimeType: "application/json",
				Text:     "line1line2",
			},
		},
		{
			name: "windows line endings flattened",
			request: spec.Request{
				Body: spec.Body("{\r\n  \"a\": 1\r\n}\r\n"),
			},
			want: &har.PostData{
				MimeType: "application/json",
				Text:     `{  "a": 1}`,
			},
		},
		{
			name: "binary body verbatim",
			request: spec.Request{
				Headers: map[string][]string{
					"Content-Type": {"application/octet-stream"},
				},
				Body: spec.Body{0x89, 0x50, 0x4e, 0x47, 0x0a, 0x00},
			},
			want: &har.PostData{
				MimeType: "application/octet-stream",
				Text:     string([]byte{0x89, 0x50, 0x4e, 0x47, 0x0a, 0x00}),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := har.Convert(tt.request)

			if tt.want == nil {
				test.True(t, got.PostData == nil)
				return
			}

			test.True(t, got.PostData != nil)
			test.Equal(t, *got.PostData, *tt.want)
		})
	}
}

func TestConvertURL(t *testing.T) {
	request := spec.Request{
		Method: "GET",
		URL:    "https://example.com/some path?q=a b",
	}

	got := har.Convert(request)

	test.Equal(t, got.Method, "GET")
	test.Equal(t, got.URL, "https://example.com/some%20path?q=a%20b")
}
