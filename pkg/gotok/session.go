package gotok

import (
	"context"
	"net/url"
)

// Session property names as sent on the wire.
const (
	SessionPropertyEchoSuppressionEnabled      = "echoSuppression.enabled"
	SessionPropertyMultiplexerNumOutputStreams = "multiplexer.numOutputStreams"
	SessionPropertyMultiplexerSwitchType       = "multiplexer.switchType"
	SessionPropertyMultiplexerSwitchTimeout    = "multiplexer.switchTimeout"
	SessionPropertyP2PPreference               = "p2p.preference"
)

const (
	ParamLocation  = "location"
	ParamPartnerID = "partner_id"
)

type P2PPreference string

const (
	P2PEnabled  P2PPreference = "enabled"
	P2PDisabled P2PPreference = "disabled"
)

// SessionOptions holds the preferences of a new session.
// Empty fields are not sent.
type SessionOptions struct {
	P2PPreference               P2PPreference
	MultiplexerSwitchType       string
	MultiplexerSwitchTimeout    string
	MultiplexerNumOutputStreams string
	EchoSuppressionEnabled      *bool
	// Properties holds additional preferences. Keys may use the flattened
	// form, e.g. "p2p_preference", and are rewritten before transmission.
	Properties map[string]string
}

// SessionCreator requests a new session ID from the platform.
// params is the output of [signer.Signer.BuildSessionParams].
type SessionCreator interface {
	CreateSession(ctx context.Context, params url.Values) (string, error)
}

type SessionCreatorFunc func(ctx context.Context, params url.Values) (string, error)

func (f SessionCreatorFunc) CreateSession(ctx context.Context, params url.Values) (string, error) {
	return f(ctx, params)
}
