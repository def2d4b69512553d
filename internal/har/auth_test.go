package har_test

import (
	"encoding/base64"
	"testing"

	"go.followtheprocess.codes/snip/internal/har"
	"go.followtheprocess.codes/test"
)

func TestNormalizeAuth(t *testing.T) {
	tests := []struct {
		name  string // Name of the test case
		value string // Input authorization header value
		want  string // Expected normalized value
	}{
		{
			name:  "raw basic pair",
			value: "Basic alice secret",
			want:  "Basic " + base64.StdEncoding.EncodeToString([]byte("alice:secret")),
		},
		{
			name:  "raw basic pair lowercase scheme",
			value: "basic alice secret",
			want:  "Basic " + base64.StdEncoding.EncodeToString([]byte("alice:secret")),
		},
		{
			name:  "raw basic pair extra whitespace",
			value: "Basic   alice   secret ",
			want:  "Basic " + base64.StdEncoding.EncodeToString([]byte("alice:secret")),
		},
		{
			name:  "already encoded",
			value: "Basic YWxpY2U6c2VjcmV0",
			want:  "Basic YWxpY2U6c2VjcmV0",
		},
		{
			name:  "no space",
			value: "sometoken",
			want:  "sometoken",
		},
		{
			name:  "bearer untouched",
			value: "Bearer alice secret",
			want:  "Bearer alice secret",
		},
		{
			name:  "digest untouched",
			value: "Digest username=alice realm=here",
			want:  "Digest username=alice realm=here",
		},
		{
			name:  "too many params",
			value: "Basic alice secret extra",
			want:  "Basic alice secret extra",
		},
		{
			name:  "empty",
			value: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := har.NormalizeAuth(tt.value)
			test.Equal(t, got, tt.want)
		})
	}
}

func TestNormalizeAuthIdempotent(t *testing.T) {
	// Values that don't match the raw "Basic user pass" shape must be
	// fixed points of normalization
	values := []string{
		"Basic YWxpY2U6c2VjcmV0",
		"Bearer token",
		"whatever",
		"",
		"Basic one two three",
	}

	for _, value := range values {
		once := har.NormalizeAuth(value)
		twice := har.NormalizeAuth(once)

		test.Equal(t, twice, once)
	}
}
