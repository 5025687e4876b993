package gotok

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("entity not found")

// IssuanceManager keeps track of the tokens issued with
// [signer.Signer.IssueToken].
type IssuanceManager interface {
	Save(ctx context.Context, token IssuedToken) error
	IssuedToken(ctx context.Context, id string) (IssuedToken, error)
	// IssuedTokens returns the tokens issued for a session ordered by issuance
	// time.
	IssuedTokens(ctx context.Context, sessionID string) ([]IssuedToken, error)
}
