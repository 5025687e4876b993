package token

import (
	"unicode/utf8"

	"github.com/luikyv/gotok/internal/strutil"
	"github.com/luikyv/gotok/pkg/gotok"
)

// ValidateClaims reports the problems that would make the platform reject a
// token. It runs on the assembled claims, so extra claims that overwrite the
// session id, the role or the connection data are checked as well.
// It is only enforced when strict claims are enabled.
func ValidateClaims(claims map[string]string) error {
	if strutil.IsBlank(claims[gotok.ClaimSessionID]) {
		return gotok.NewError(gotok.ErrorCodeInvalidClaims, "session id is required")
	}

	if role := gotok.Role(claims[gotok.ClaimRole]); !role.IsValid() {
		return gotok.NewError(gotok.ErrorCodeInvalidClaims, "invalid role "+string(role))
	}

	if utf8.RuneCountInString(claims[gotok.ClaimConnectionData]) > gotok.MaxConnectionDataLength {
		return gotok.NewError(gotok.ErrorCodeInvalidClaims, "connection data is limited to 1000 characters")
	}

	return nil
}
