package tok

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/luikyv/gotok/internal/metrics"
	"github.com/luikyv/gotok/pkg/gotok"
)

type Configuration struct {
	Credentials gotok.Credentials
	// TokenSentinel is prepended to every token and marks its format version.
	TokenSentinel string
	SDKVersion    string

	SessionCreator  gotok.SessionCreator
	IssuanceManager gotok.IssuanceManager
	HTTPClient      *http.Client

	// NowFunc is the clock used for the "create_time" claim.
	NowFunc func() time.Time
	// NonceFunc returns the "nonce" claim. It must be safe for concurrent use.
	NonceFunc func() int

	// StrictClaimsIsEnabled makes token issuance reject malformed claims
	// instead of producing a token the platform would refuse.
	StrictClaimsIsEnabled bool

	Logger  *slog.Logger
	Metrics *metrics.Collector
}
