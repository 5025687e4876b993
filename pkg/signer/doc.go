// Package signer creates sessions and signs participant tokens for the media
// platform.
//
// A signer is configured with the account [gotok.Credentials] and
// [Option]s and instantiated using [New].
//
//	s, err := signer.New(gotok.Credentials{
//		Key:       "123456",
//		Secret:    os.Getenv("GOTOK_SECRET"),
//		ServerURL: "https://api.example.com",
//	})
//	sessionID, err := s.CreateSession(ctx, "", nil)
//	token := s.GenerateToken(sessionID, &gotok.TokenOptions{Role: gotok.RoleSubscriber})
//
// By default issued tokens are kept in memory. See [WithIssuanceStorage] to
// change it.
package signer
