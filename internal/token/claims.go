package token

import (
	"maps"
	"strconv"

	"github.com/luikyv/gotok/internal/timeutil"
	"github.com/luikyv/gotok/internal/tok"
	"github.com/luikyv/gotok/pkg/gotok"
)

// Claims assembles the claims of a token for the session.
// The keys are kept in their flattened form. They are only rewritten to the
// wire form when encoded, see [Encode].
func Claims(
	config *tok.Configuration,
	sessionID string,
	opts *gotok.TokenOptions,
) map[string]string {
	claims := map[string]string{
		gotok.ClaimSessionID:  sessionID,
		gotok.ClaimCreateTime: strconv.Itoa(timeutil.Timestamp(config.NowFunc())),
		gotok.ClaimNonce:      strconv.Itoa(config.NonceFunc()),
	}

	if opts != nil {
		maps.Copy(claims, opts.Claims)

		if opts.Role != "" {
			claims[gotok.ClaimRole] = string(opts.Role)
		}

		if !opts.ExpireTime.IsZero() {
			claims[gotok.ClaimExpireTime] = strconv.Itoa(timeutil.Timestamp(opts.ExpireTime))
		}

		if opts.ConnectionData != "" {
			claims[gotok.ClaimConnectionData] = opts.ConnectionData
		}
	}

	if _, ok := claims[gotok.ClaimRole]; !ok {
		claims[gotok.ClaimRole] = string(gotok.RolePublisher)
	}

	return claims
}
