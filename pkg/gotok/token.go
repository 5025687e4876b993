package gotok

import (
	"maps"
	"time"
)

type Role string

const (
	RoleSubscriber Role = "subscriber"
	RolePublisher  Role = "publisher"
	RoleModerator  Role = "moderator"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleSubscriber, RolePublisher, RoleModerator:
		return true
	default:
		return false
	}
}

// Claim names recognized by the platform.
const (
	ClaimSessionID      = "session_id"
	ClaimCreateTime     = "create_time"
	ClaimNonce          = "nonce"
	ClaimRole           = "role"
	ClaimExpireTime     = "expire_time"
	ClaimConnectionData = "connection_data"
)

const (
	// MaxNonce is the exclusive upper bound of token nonces.
	MaxNonce = 999999
	// MaxConnectionDataLength is the platform limit for connection data.
	MaxConnectionDataLength = 1000
)

// TokenOptions customizes the claims embedded in a token.
// The zero value produces a publisher token with no expiration.
type TokenOptions struct {
	// Role defaults to [RolePublisher] when empty.
	Role Role
	// ExpireTime is sent as Unix seconds. The zero value means the platform
	// default expiration.
	ExpireTime time.Time
	// ConnectionData is metadata about the connection shared with the other
	// participants.
	ConnectionData string
	// Claims holds additional claims. They overlay the generated ones, so
	// setting "create_time" or "nonce" here fixes those values.
	Claims map[string]string
}

// AddClaims merges claims into the additional claims, overwriting the ones
// with the same key.
func (opts *TokenOptions) AddClaims(claims map[string]string) {
	if opts.Claims == nil {
		opts.Claims = map[string]string{}
	}
	maps.Copy(opts.Claims, claims)
}

// TokenPayload is the decoded content of a token.
type TokenPayload struct {
	PartnerID  string
	SDKVersion string
	Signature  string
	// EncodedClaims is the exact string the signature was computed over.
	EncodedClaims string
	Claims        map[string]string
}

func (p TokenPayload) SessionID() string {
	return p.Claims[ClaimSessionID]
}

func (p TokenPayload) Role() Role {
	return Role(p.Claims[ClaimRole])
}

// IssuedToken records a token handed out to a participant.
type IssuedToken struct {
	ID        string    `json:"id" bson:"_id"`
	SessionID string    `json:"session_id" bson:"session_id"`
	Role      Role      `json:"role" bson:"role"`
	Nonce     string    `json:"nonce" bson:"nonce"`
	CreatedAt int       `json:"created_at" bson:"created_at"`
	ExpiresAt int       `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
	Token     string    `json:"token" bson:"token"`
	IssuedAt  time.Time `json:"issued_at" bson:"issued_at"`
}
