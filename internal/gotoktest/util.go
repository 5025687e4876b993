// Package gotoktest contains fixtures shared by the tests.
package gotoktest

import (
	"testing"
	"time"

	"github.com/luikyv/gotok/internal/tok"
	"github.com/luikyv/gotok/pkg/gotok"
	"github.com/luikyv/gotok/pkg/signer"
	"github.com/stretchr/testify/require"
)

const (
	Key           string = "123"
	Secret        string = "s3cr3t"
	ServerURL     string = "https://example.com"
	TokenSentinel string = "T1=="
	SDKVersion    string = "v1"
	SessionID     string = "SESSION_A"
	Nonce         int    = 4242
)

// Now is the fixed instant returned by the clock of the test signers.
var Now = time.Unix(1700000000, 0).UTC()

func Credentials() gotok.Credentials {
	return gotok.Credentials{
		Key:       Key,
		Secret:    Secret,
		ServerURL: ServerURL,
	}
}

// NewConfiguration returns a configuration with a fixed clock and nonce.
func NewConfiguration(_ *testing.T) *tok.Configuration {
	return &tok.Configuration{
		Credentials:   Credentials(),
		TokenSentinel: TokenSentinel,
		SDKVersion:    SDKVersion,
		NowFunc:       func() time.Time { return Now },
		NonceFunc:     func() int { return Nonce },
	}
}

// NewSigner returns a signer with a fixed clock and nonce. opts are applied
// after the defaults of the fixture.
func NewSigner(t *testing.T, opts ...signer.Option) *signer.Signer {
	t.Helper()

	opts = append([]signer.Option{
		signer.WithSDKVersion(SDKVersion),
		signer.WithClock(func() time.Time { return Now }),
		signer.WithNonceFunc(func() int { return Nonce }),
	}, opts...)

	s, err := signer.New(Credentials(), opts...)
	require.NoError(t, err)
	return s
}
