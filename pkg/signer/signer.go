package signer

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/luikyv/gotok/internal/metrics"
	"github.com/luikyv/gotok/internal/session"
	"github.com/luikyv/gotok/internal/storage"
	"github.com/luikyv/gotok/internal/timeutil"
	"github.com/luikyv/gotok/internal/tok"
	"github.com/luikyv/gotok/internal/token"
	"github.com/luikyv/gotok/pkg/gotok"
	"github.com/prometheus/client_golang/prometheus"
)

// Signer is safe for concurrent use. Its configuration cannot change after
// [New] returns.
type Signer struct {
	config *tok.Configuration
	// metricsRegisterer is only used by New.
	metricsRegisterer prometheus.Registerer
}

// New creates a signer for the account described by creds.
// The credentials, the token sentinel and the sdk version must not be blank.
// After validation, the secret is trimmed and trailing slashes are removed
// from the server URL.
func New(creds gotok.Credentials, opts ...Option) (*Signer, error) {
	s := &Signer{
		config: &tok.Configuration{
			Credentials: creds,
		},
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, gotok.WrapError(gotok.ErrorCodeInvalidConfiguration, "invalid signer option", err)
		}
	}

	s.setDefaults()

	if err := s.validate(); err != nil {
		return nil, err
	}

	if s.metricsRegisterer != nil {
		collector, err := metrics.NewCollector(s.metricsRegisterer)
		if err != nil {
			return nil, gotok.WrapError(gotok.ErrorCodeInvalidConfiguration, "could not register the signer metrics", err)
		}
		s.config.Metrics = collector
	}

	s.config.Credentials.Secret = strings.TrimSpace(s.config.Credentials.Secret)
	s.config.Credentials.ServerURL = strings.TrimRight(s.config.Credentials.ServerURL, "/")
	s.config.SessionCreator = nonNilOrDefault(
		s.config.SessionCreator,
		gotok.SessionCreator(session.NewHTTPCreator(
			s.config.HTTPClient,
			s.config.Credentials,
			s.config.Logger,
		)),
	)

	return s, nil
}

func (s *Signer) setDefaults() {
	s.config.TokenSentinel = nonEmptyOrDefault(s.config.TokenSentinel, gotok.DefaultTokenSentinel)
	s.config.SDKVersion = nonEmptyOrDefault(s.config.SDKVersion, gotok.DefaultSDKVersion)
	s.config.HTTPClient = nonNilOrDefault(s.config.HTTPClient, defaultHTTPClient())
	s.config.IssuanceManager = nonNilOrDefault(
		s.config.IssuanceManager,
		gotok.IssuanceManager(storage.NewIssuanceManager()),
	)
	s.config.NowFunc = nonNilOrDefault(s.config.NowFunc, timeutil.Now)
	s.config.NonceFunc = nonNilOrDefault(s.config.NonceFunc, defaultNonceFunc)
	s.config.Logger = nonNilOrDefault(s.config.Logger, defaultLogger())
}

// Key returns the account key the signer was created with.
func (s *Signer) Key() string {
	return s.config.Credentials.Key
}

// BuildSessionParams returns the form values of a session creation request.
// An empty location lets the platform situate the session based on the first
// client that connects. Option keys are rewritten to their wire form, e.g.
// "p2p_preference" becomes "p2p.preference".
func (s *Signer) BuildSessionParams(location string, opts *gotok.SessionOptions) url.Values {
	return session.Params(s.config, location, opts)
}

// CreateSession requests a new session ID from the platform.
// Failures are not retried.
func (s *Signer) CreateSession(
	ctx context.Context,
	location string,
	opts *gotok.SessionOptions,
) (
	string,
	error,
) {
	params := s.BuildSessionParams(location, opts)
	sessionID, err := s.config.SessionCreator.CreateSession(ctx, params)
	s.config.Metrics.SessionCreated(err)
	if err != nil {
		s.config.Logger.ErrorContext(ctx, "could not create session", slog.String("error", err.Error()))
		return "", err
	}

	s.config.Logger.DebugContext(ctx, "session created", slog.String("session_id", sessionID))
	return sessionID, nil
}

// GenerateToken signs a token that admits a participant into the session.
// It never fails. Malformed options, e.g. an empty session id, produce a token
// the platform rejects. Use [Signer.IssueToken] with [WithStrictClaims] to
// catch those locally.
func (s *Signer) GenerateToken(sessionID string, opts *gotok.TokenOptions) string {
	claims := token.Claims(s.config, sessionID, opts)
	return s.makeToken(claims)
}

// IssueToken generates a token and records it in the issuance storage.
// The record describes the claims actually signed, so an extra claim that
// overwrites the session id is reflected in [gotok.IssuedToken.SessionID].
func (s *Signer) IssueToken(
	ctx context.Context,
	sessionID string,
	opts *gotok.TokenOptions,
) (
	gotok.IssuedToken,
	error,
) {
	claims := token.Claims(s.config, sessionID, opts)
	if s.config.StrictClaimsIsEnabled {
		if err := token.ValidateClaims(claims); err != nil {
			return gotok.IssuedToken{}, err
		}
	}

	issued := gotok.IssuedToken{
		ID:        uuid.NewString(),
		SessionID: claims[gotok.ClaimSessionID],
		Role:      gotok.Role(claims[gotok.ClaimRole]),
		Nonce:     claims[gotok.ClaimNonce],
		CreatedAt: atoi(claims[gotok.ClaimCreateTime]),
		ExpiresAt: atoi(claims[gotok.ClaimExpireTime]),
		Token:     s.makeToken(claims),
		IssuedAt:  s.config.NowFunc(),
	}

	if err := s.config.IssuanceManager.Save(ctx, issued); err != nil {
		return gotok.IssuedToken{}, gotok.WrapError(gotok.ErrorCodeStorageFailure, "could not save the issued token", err)
	}

	s.config.Logger.InfoContext(
		ctx,
		"token issued",
		slog.String("issuance_id", issued.ID),
		slog.String("session_id", issued.SessionID),
		slog.String("role", string(issued.Role)),
	)
	return issued, nil
}

// IssuedTokens is a shortcut to list the tokens issued for a session using
// the issuance storage.
func (s *Signer) IssuedTokens(ctx context.Context, sessionID string) ([]gotok.IssuedToken, error) {
	return s.config.IssuanceManager.IssuedTokens(ctx, sessionID)
}

// ParseToken decodes a token generated with this signer's sentinel.
// The signature is not checked, see [Signer.VerifyToken].
func (s *Signer) ParseToken(tkn string) (gotok.TokenPayload, error) {
	return token.Parse(s.config.TokenSentinel, tkn)
}

// VerifyToken decodes a token and checks it was signed for this account.
func (s *Signer) VerifyToken(tkn string) (gotok.TokenPayload, error) {
	payload, err := s.ParseToken(tkn)
	if err != nil {
		return gotok.TokenPayload{}, err
	}

	if payload.PartnerID != s.config.Credentials.Key {
		return gotok.TokenPayload{}, gotok.NewError(gotok.ErrorCodeInvalidToken, "the token was issued for another partner")
	}

	if err := token.Verify(s.config.Credentials.Secret, payload); err != nil {
		return gotok.TokenPayload{}, err
	}

	return payload, nil
}

func (s *Signer) makeToken(claims map[string]string) string {
	tkn := token.Make(s.config, claims)
	s.config.Metrics.TokenGenerated(claims[gotok.ClaimRole])
	s.config.Logger.Debug(
		"token generated",
		slog.String("session_id", claims[gotok.ClaimSessionID]),
		slog.String("role", claims[gotok.ClaimRole]),
	)
	return tkn
}

// atoi returns zero when s is not an integer.
func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}
