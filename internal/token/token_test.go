package token_test

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/luikyv/gotok/internal/gotoktest"
	"github.com/luikyv/gotok/internal/token"
	"github.com/luikyv/gotok/pkg/gotok"
	"github.com/stretchr/testify/require"
)

func TestClaims_Defaults(t *testing.T) {
	// Given.
	config := gotoktest.NewConfiguration(t)

	// When.
	claims := token.Claims(config, gotoktest.SessionID, nil)

	// Then.
	want := map[string]string{
		"session_id":  gotoktest.SessionID,
		"create_time": "1700000000",
		"nonce":       "4242",
		"role":        "publisher",
	}
	if diff := cmp.Diff(want, claims); diff != "" {
		t.Error(diff)
	}
}

func TestClaims_WithOptions(t *testing.T) {
	// Given.
	config := gotoktest.NewConfiguration(t)
	opts := &gotok.TokenOptions{
		Role:           gotok.RoleModerator,
		ExpireTime:     gotoktest.Now.Add(30*time.Second + 900*time.Millisecond),
		ConnectionData: "name=alice",
		Claims: map[string]string{
			"nonce":          "1",
			"p2p_preference": "enabled",
		},
	}

	// When.
	claims := token.Claims(config, gotoktest.SessionID, opts)

	// Then.
	want := map[string]string{
		"session_id":      gotoktest.SessionID,
		"create_time":     "1700000000",
		"nonce":           "1",
		"role":            "moderator",
		"expire_time":     "1700000030",
		"connection_data": "name=alice",
		"p2p_preference":  "enabled",
	}
	if diff := cmp.Diff(want, claims); diff != "" {
		t.Error(diff)
	}
}

func TestClaims_RoleFromExtraClaims(t *testing.T) {
	// Given.
	config := gotoktest.NewConfiguration(t)
	opts := &gotok.TokenOptions{
		Claims: map[string]string{"role": "subscriber"},
	}

	// When.
	claims := token.Claims(config, gotoktest.SessionID, opts)

	// Then.
	require.Equal(t, "subscriber", claims["role"])
}

func TestEncode(t *testing.T) {
	// Given.
	claims := map[string]string{
		"session_id":      "SESSION_A",
		"connection_data": "a b&c",
		"p2p_preference":  "enabled",
		"foo_bar":         "baz",
	}

	// When.
	encoded := token.Encode(claims)

	// Then.
	want := "connection_data=a+b%26c&foo_bar=baz&p2p.preference=enabled&session_id=SESSION_A"
	if encoded != want {
		t.Errorf("Encode() = %s, want %s", encoded, want)
	}
}

func TestEncode_DoesNotChangeTheClaims(t *testing.T) {
	// Given.
	claims := map[string]string{"p2p_preference": "enabled"}

	// When.
	token.Encode(claims)

	// Then.
	require.Equal(t, "enabled", claims["p2p_preference"])
}

func TestSign(t *testing.T) {
	// RFC 2202 test case 2.
	sig := token.Sign("Jefe", "what do ya want for nothing?")

	if sig != "effcdf6ae5eb2fa2d27416d5f184df9c259a7c79" {
		t.Errorf("Sign() = %s", sig)
	}
}

func TestMake(t *testing.T) {
	// Given.
	config := gotoktest.NewConfiguration(t)
	claims := token.Claims(config, gotoktest.SessionID, nil)

	// When.
	tkn := token.Make(config, claims)

	// Then.
	encodedPayload, ok := strings.CutPrefix(tkn, gotoktest.TokenSentinel)
	require.True(t, ok, "the token must start with the sentinel")

	rawPayload, err := base64.StdEncoding.DecodeString(encodedPayload)
	require.NoError(t, err)

	encodedClaims := "create_time=1700000000&nonce=4242&role=publisher&session_id=SESSION_A"
	mac := hmac.New(sha1.New, []byte(gotoktest.Secret))
	mac.Write([]byte(encodedClaims))
	wantPayload := "partner_id=123&sdk_version=v1&sig=" + hex.EncodeToString(mac.Sum(nil)) + ":" + encodedClaims
	require.Equal(t, wantPayload, string(rawPayload))
}

func TestMake_IsDeterministic(t *testing.T) {
	// Given.
	config := gotoktest.NewConfiguration(t)
	opts := &gotok.TokenOptions{
		Role:   gotok.RoleSubscriber,
		Claims: map[string]string{"a": "1", "b": "2", "c": "3"},
	}

	// When.
	first := token.Make(config, token.Claims(config, gotoktest.SessionID, opts))
	second := token.Make(config, token.Claims(config, gotoktest.SessionID, opts))

	// Then.
	require.Equal(t, first, second)
}

func TestParse(t *testing.T) {
	// Given.
	config := gotoktest.NewConfiguration(t)
	tkn := token.Make(config, token.Claims(config, gotoktest.SessionID, &gotok.TokenOptions{
		ConnectionData: "a:b c",
	}))

	// When.
	payload, err := token.Parse(gotoktest.TokenSentinel, tkn)

	// Then.
	require.NoError(t, err)
	require.Equal(t, gotoktest.Key, payload.PartnerID)
	require.Equal(t, gotoktest.SDKVersion, payload.SDKVersion)
	require.Len(t, payload.Signature, 40)
	require.Equal(t, gotoktest.SessionID, payload.SessionID())
	require.Equal(t, gotok.RolePublisher, payload.Role())
	require.Equal(t, "a:b c", payload.Claims["connection_data"])
	require.NoError(t, token.Verify(gotoktest.Secret, payload))
}

func TestParse_ColonInHeaderValues(t *testing.T) {
	// Given.
	config := gotoktest.NewConfiguration(t)
	config.Credentials.Key = "12:3"
	config.SDKVersion = "v:1&x"
	tkn := token.Make(config, token.Claims(config, gotoktest.SessionID, &gotok.TokenOptions{
		ConnectionData: "a:b",
	}))

	// When.
	payload, err := token.Parse(gotoktest.TokenSentinel, tkn)

	// Then.
	require.NoError(t, err)
	require.Equal(t, "12:3", payload.PartnerID)
	require.Equal(t, "v:1&x", payload.SDKVersion)
	require.Equal(t, gotoktest.SessionID, payload.SessionID())
	require.Equal(t, "a:b", payload.Claims["connection_data"])
	require.NoError(t, token.Verify(gotoktest.Secret, payload))
}

func TestParse_InvalidToken(t *testing.T) {
	testCases := map[string]string{
		"no sentinel":     "T2==" + base64.StdEncoding.EncodeToString([]byte("partner_id=1&sdk_version=v1&sig=a:b=c")),
		"invalid base64":  "T1==%%%",
		"no claims":       "T1==" + base64.StdEncoding.EncodeToString([]byte("partner_id=1&sdk_version=v1&sig=a")),
		"missing sig":     "T1==" + base64.StdEncoding.EncodeToString([]byte("partner_id=1&sdk_version=v1:b=c")),
		"missing version": "T1==" + base64.StdEncoding.EncodeToString([]byte("partner_id=1&sig=a:b=c")),
		"missing partner": "T1==" + base64.StdEncoding.EncodeToString([]byte("sdk_version=v1&sig=a:b=c")),
	}

	for name, tkn := range testCases {
		t.Run(name, func(t *testing.T) {
			// When.
			_, err := token.Parse(gotoktest.TokenSentinel, tkn)

			// Then.
			require.Error(t, err)
			require.True(t, gotok.IsCode(err, gotok.ErrorCodeInvalidToken), err)
		})
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	// Given.
	config := gotoktest.NewConfiguration(t)
	tkn := token.Make(config, token.Claims(config, gotoktest.SessionID, nil))
	payload, err := token.Parse(gotoktest.TokenSentinel, tkn)
	require.NoError(t, err)

	// When.
	err = token.Verify("another_secret", payload)

	// Then.
	require.Error(t, err)
}

func TestVerify_TamperedClaims(t *testing.T) {
	// Given.
	config := gotoktest.NewConfiguration(t)
	tkn := token.Make(config, token.Claims(config, gotoktest.SessionID, nil))
	payload, err := token.Parse(gotoktest.TokenSentinel, tkn)
	require.NoError(t, err)
	payload.EncodedClaims = strings.Replace(payload.EncodedClaims, "role=publisher", "role=moderator", 1)

	// When.
	err = token.Verify(gotoktest.Secret, payload)

	// Then.
	require.Error(t, err)
}

func TestValidateClaims(t *testing.T) {
	testCases := []struct {
		name      string
		sessionID string
		opts      *gotok.TokenOptions
		wantErr   bool
	}{
		{name: "no options", sessionID: gotoktest.SessionID},
		{name: "valid options", sessionID: gotoktest.SessionID, opts: &gotok.TokenOptions{Role: gotok.RoleModerator}},
		{name: "blank session id", sessionID: " ", wantErr: true},
		{
			name:      "session id erased by extra claims",
			sessionID: gotoktest.SessionID,
			opts:      &gotok.TokenOptions{Claims: map[string]string{"session_id": ""}},
			wantErr:   true,
		},
		{
			name:      "session id given by extra claims",
			sessionID: "",
			opts:      &gotok.TokenOptions{Claims: map[string]string{"session_id": gotoktest.SessionID}},
		},
		{name: "unknown role", sessionID: gotoktest.SessionID, opts: &gotok.TokenOptions{Role: "admin"}, wantErr: true},
		{
			name:      "unknown role in claims",
			sessionID: gotoktest.SessionID,
			opts:      &gotok.TokenOptions{Claims: map[string]string{"role": "admin"}},
			wantErr:   true,
		},
		{
			name:      "empty role in claims",
			sessionID: gotoktest.SessionID,
			opts:      &gotok.TokenOptions{Claims: map[string]string{"role": ""}},
			wantErr:   true,
		},
		{
			name:      "typed role overrides claims",
			sessionID: gotoktest.SessionID,
			opts:      &gotok.TokenOptions{Role: gotok.RoleSubscriber, Claims: map[string]string{"role": "admin"}},
		},
		{
			name:      "connection data too long",
			sessionID: gotoktest.SessionID,
			opts:      &gotok.TokenOptions{ConnectionData: strings.Repeat("a", 1001)},
			wantErr:   true,
		},
		{
			name:      "connection data too long in claims",
			sessionID: gotoktest.SessionID,
			opts:      &gotok.TokenOptions{Claims: map[string]string{"connection_data": strings.Repeat("a", 5000)}},
			wantErr:   true,
		},
		{
			name:      "connection data at the limit",
			sessionID: gotoktest.SessionID,
			opts:      &gotok.TokenOptions{ConnectionData: strings.Repeat("é", 1000)},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			// Given.
			config := gotoktest.NewConfiguration(t)
			claims := token.Claims(config, testCase.sessionID, testCase.opts)

			// When.
			err := token.ValidateClaims(claims)

			// Then.
			if testCase.wantErr {
				require.True(t, gotok.IsCode(err, gotok.ErrorCodeInvalidClaims), err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
