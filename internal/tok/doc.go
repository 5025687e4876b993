// Package tok is a complement of the package gotok containing private structs
// that are not meant to be accessible for users of gotok.
// It holds the signer configuration shared by the internal packages.
package tok
