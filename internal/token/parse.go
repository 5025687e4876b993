package token

import (
	"crypto/hmac"
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/luikyv/gotok/pkg/gotok"
)

// Parse decodes a token without checking its signature.
func Parse(sentinel, token string) (gotok.TokenPayload, error) {
	encodedPayload, ok := strings.CutPrefix(token, sentinel)
	if !ok {
		return gotok.TokenPayload{}, gotok.NewError(gotok.ErrorCodeInvalidToken, "the token doesn't start with the sentinel")
	}

	rawPayload, err := base64.StdEncoding.DecodeString(encodedPayload)
	if err != nil {
		return gotok.TokenPayload{}, gotok.WrapError(gotok.ErrorCodeInvalidToken, "the token payload is not valid base64", err)
	}

	// The claims are form encoded, so they never hold a raw ':' while the key
	// and the sdk version might.
	sep := strings.LastIndexByte(string(rawPayload), ':')
	if sep < 0 {
		return gotok.TokenPayload{}, gotok.NewError(gotok.ErrorCodeInvalidToken, "the token payload has no claims")
	}
	header, encodedClaims := string(rawPayload[:sep]), string(rawPayload[sep+1:])

	partnerID, sdkVersion, sig, err := parseHeader(header)
	if err != nil {
		return gotok.TokenPayload{}, err
	}

	claimValues, err := url.ParseQuery(encodedClaims)
	if err != nil {
		return gotok.TokenPayload{}, gotok.WrapError(gotok.ErrorCodeInvalidToken, "could not parse the token claims", err)
	}

	claims := make(map[string]string, len(claimValues))
	for key := range claimValues {
		claims[key] = claimValues.Get(key)
	}

	return gotok.TokenPayload{
		PartnerID:     partnerID,
		SDKVersion:    sdkVersion,
		Signature:     sig,
		EncodedClaims: encodedClaims,
		Claims:        claims,
	}, nil
}

// parseHeader splits "partner_id={key}&sdk_version={version}&sig={sig}".
// The values are written verbatim when the token is made, so they are read
// back without unescaping.
func parseHeader(header string) (partnerID, sdkVersion, sig string, err error) {
	rest, ok := strings.CutPrefix(header, "partner_id=")
	if !ok {
		return "", "", "", gotok.NewError(gotok.ErrorCodeInvalidToken, "the token header is missing partner_id")
	}

	i := strings.LastIndex(rest, "&sig=")
	if i < 0 {
		return "", "", "", gotok.NewError(gotok.ErrorCodeInvalidToken, "the token header is missing sig")
	}
	rest, sig = rest[:i], rest[i+len("&sig="):]

	i = strings.LastIndex(rest, "&sdk_version=")
	if i < 0 {
		return "", "", "", gotok.NewError(gotok.ErrorCodeInvalidToken, "the token header is missing sdk_version")
	}
	return rest[:i], rest[i+len("&sdk_version="):], sig, nil
}

// Verify checks the signature of a decoded token against the secret.
func Verify(secret string, payload gotok.TokenPayload) error {
	expected := Sign(secret, payload.EncodedClaims)
	if !hmac.Equal([]byte(expected), []byte(payload.Signature)) {
		return gotok.NewError(gotok.ErrorCodeInvalidToken, "the token signature doesn't match")
	}
	return nil
}
