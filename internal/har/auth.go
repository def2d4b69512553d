package har

import (
	"encoding/base64"
	"strings"
)

// basicScheme is the authorization scheme that gets canonicalized, compared
// case-insensitively.
const basicScheme = "basic"

// NormalizeAuth canonicalizes Basic authorization header values supplied as
// a raw "Basic <user> <password>" pair into the standards-compliant
// "Basic <base64(user:password)>" form.
//
// Callers may supply Basic credentials pre-encoded or as a raw user/password
// pair, this makes both forms valid without the caller needing to know the
// encoding rule. Any value that doesn't match the raw pair shape exactly is
// returned unchanged, including non-Basic schemes, so normalization is a
// tolerant fallback rather than a validation step.
func NormalizeAuth(value string) string {
	scheme, rest, found := strings.Cut(value, " ")
	if !found {
		// No scheme/credential separation possible
		return value
	}

	if !strings.EqualFold(scheme, basicScheme) {
		return value
	}

	params := strings.Fields(rest)
	if len(params) != 2 {
		// Already encoded, or some shape we don't understand
		return value
	}

	user, pass := params[0], params[1]

	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}
