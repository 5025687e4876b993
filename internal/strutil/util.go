// Package strutil contains functions to help handling strings.
package strutil

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// namespaceRoots are the option prefixes the platform represents as nested
// configuration. Their keys use dots on the wire.
var namespaceRoots = []string{"echoSuppression", "multiplexer", "p2p"}

// NormalizeKey rewrites a flattened option key such as "p2p_preference" to its
// wire form "p2p.preference". Keys outside the namespace roots are returned
// unchanged.
func NormalizeKey(key string) string {
	for _, root := range namespaceRoots {
		if strings.HasPrefix(key, root) {
			return strings.ReplaceAll(key, "_", ".")
		}
	}
	return key
}

// IsBlank reports whether s is empty or contains only white space.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// RandomInt returns a uniform random integer in [0, max).
func RandomInt(max int) int {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}
	return int(n.Int64())
}
