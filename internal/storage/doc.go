// Package storage provides the default implementation of
// [gotok.IssuanceManager].
//
// The implementation stores issued tokens in memory so when the server
// restarts all of them are lost.
package storage
