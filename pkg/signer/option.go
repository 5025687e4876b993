package signer

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/luikyv/gotok/internal/strutil"
	"github.com/luikyv/gotok/pkg/gotok"
	"github.com/prometheus/client_golang/prometheus"
)

type Option func(s *Signer) error

// WithTokenSentinel overrides the prefix of the tokens which is
// [gotok.DefaultTokenSentinel].
func WithTokenSentinel(sentinel string) Option {
	return func(s *Signer) error {
		if strutil.IsBlank(sentinel) {
			return errors.New("token sentinel is required")
		}
		s.config.TokenSentinel = sentinel
		return nil
	}
}

// WithSDKVersion overrides the "sdk_version" sent in every token which is
// [gotok.DefaultSDKVersion].
func WithSDKVersion(version string) Option {
	return func(s *Signer) error {
		if strutil.IsBlank(version) {
			return errors.New("sdk version is required")
		}
		s.config.SDKVersion = version
		return nil
	}
}

// WithHTTPClient replaces the client used to create sessions.
// It has no effect when a custom session creator is informed with
// [WithSessionCreator].
func WithHTTPClient(client *http.Client) Option {
	return func(s *Signer) error {
		s.config.HTTPClient = client
		return nil
	}
}

// WithSessionCreator replaces the default session creator which calls the
// platform REST endpoint.
func WithSessionCreator(creator gotok.SessionCreator) Option {
	return func(s *Signer) error {
		s.config.SessionCreator = creator
		return nil
	}
}

// WithIssuanceStorage replaces the default storage of issued tokens which
// keeps them in memory.
func WithIssuanceStorage(storage gotok.IssuanceManager) Option {
	return func(s *Signer) error {
		s.config.IssuanceManager = storage
		return nil
	}
}

// WithLogger defines the logger of the signer. By default nothing is logged.
// Secrets and tokens are never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Signer) error {
		s.config.Logger = logger
		return nil
	}
}

// WithClock replaces the clock used to fill the "create_time" claim.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) error {
		s.config.NowFunc = now
		return nil
	}
}

// WithNonceFunc replaces the source of the "nonce" claim.
// The function must be safe for concurrent use and should return values in
// [0, gotok.MaxNonce).
func WithNonceFunc(f func() int) Option {
	return func(s *Signer) error {
		s.config.NonceFunc = f
		return nil
	}
}

// WithStrictClaims makes [Signer.IssueToken] reject claims that would produce
// a token the platform refuses, e.g. an empty session id or an unknown role.
// The check runs after the additional claims are merged.
// [Signer.GenerateToken] is not affected and always returns a token.
func WithStrictClaims() Option {
	return func(s *Signer) error {
		s.config.StrictClaimsIsEnabled = true
		return nil
	}
}

// WithMetrics registers the signer counters with reg once the signer is
// successfully created. Signers sharing reg share the counters.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *Signer) error {
		if reg == nil {
			return errors.New("the metrics registerer is required")
		}
		s.metricsRegisterer = reg
		return nil
	}
}
