// Package gotok contains the public types shared by the signer, the session
// creators and the issuance storages.
//
// Tokens are created with [signer.New] and [signer.Signer.GenerateToken]. The
// types here describe what goes into a token ([TokenOptions]), what goes into
// a session creation request ([SessionOptions]) and what comes out of a
// decoded token ([TokenPayload]).
package gotok
