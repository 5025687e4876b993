// Package session builds session creation requests and sends them to the
// platform.
package session

import (
	"maps"
	"net/url"
	"slices"
	"strconv"

	"github.com/luikyv/gotok/internal/strutil"
	"github.com/luikyv/gotok/internal/tok"
	"github.com/luikyv/gotok/pkg/gotok"
)

// Flattened names of the typed session preferences.
const (
	propertyP2PPreference               = "p2p_preference"
	propertyMultiplexerSwitchType       = "multiplexer_switchType"
	propertyMultiplexerSwitchTimeout    = "multiplexer_switchTimeout"
	propertyMultiplexerNumOutputStreams = "multiplexer_numOutputStreams"
	propertyEchoSuppressionEnabled      = "echoSuppression_enabled"
)

// Params returns the form values of a session creation request.
// An empty location lets the platform choose based on the first client that
// connects.
func Params(
	config *tok.Configuration,
	location string,
	opts *gotok.SessionOptions,
) url.Values {
	properties := Properties(opts)
	properties[gotok.ParamLocation] = location
	properties[gotok.ParamPartnerID] = config.Credentials.Key

	params := url.Values{}
	for _, key := range slices.Sorted(maps.Keys(properties)) {
		params.Set(strutil.NormalizeKey(key), properties[key])
	}
	return params
}

// Properties flattens the session options using the underscored key names.
func Properties(opts *gotok.SessionOptions) map[string]string {
	properties := map[string]string{}
	if opts == nil {
		return properties
	}

	maps.Copy(properties, opts.Properties)

	if opts.P2PPreference != "" {
		properties[propertyP2PPreference] = string(opts.P2PPreference)
	}

	if opts.MultiplexerSwitchType != "" {
		properties[propertyMultiplexerSwitchType] = opts.MultiplexerSwitchType
	}

	if opts.MultiplexerSwitchTimeout != "" {
		properties[propertyMultiplexerSwitchTimeout] = opts.MultiplexerSwitchTimeout
	}

	if opts.MultiplexerNumOutputStreams != "" {
		properties[propertyMultiplexerNumOutputStreams] = opts.MultiplexerNumOutputStreams
	}

	if opts.EchoSuppressionEnabled != nil {
		properties[propertyEchoSuppressionEnabled] = strconv.FormatBool(*opts.EchoSuppressionEnabled)
	}

	return properties
}
