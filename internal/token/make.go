package token

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"maps"
	"net/url"
	"slices"

	"github.com/luikyv/gotok/internal/strutil"
	"github.com/luikyv/gotok/internal/tok"
)

// Make signs the claims and packages them as a token.
func Make(config *tok.Configuration, claims map[string]string) string {
	encodedClaims := Encode(claims)
	sig := Sign(config.Credentials.Secret, encodedClaims)
	payload := fmt.Sprintf(
		"partner_id=%s&sdk_version=%s&sig=%s:%s",
		config.Credentials.Key,
		config.SDKVersion,
		sig,
		encodedClaims,
	)
	return config.TokenSentinel + base64.StdEncoding.EncodeToString([]byte(payload))
}

// Encode normalizes the keys and form encodes the claims with the keys sorted.
// When two keys normalize to the same wire name, the one sorting last wins.
func Encode(claims map[string]string) string {
	values := url.Values{}
	for _, key := range slices.Sorted(maps.Keys(claims)) {
		values.Set(strutil.NormalizeKey(key), claims[key])
	}
	return values.Encode()
}

// Sign returns the lowercase hex HMAC-SHA1 of the message keyed with secret.
func Sign(secret, message string) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}
