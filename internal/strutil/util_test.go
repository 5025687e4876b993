package strutil_test

import (
	"fmt"
	"testing"

	"github.com/luikyv/gotok/internal/strutil"
)

func TestNormalizeKey(t *testing.T) {
	// Given.
	testCases := []struct {
		key  string
		want string
	}{
		{key: "p2p_preference", want: "p2p.preference"},
		{key: "multiplexer_switchType", want: "multiplexer.switchType"},
		{key: "multiplexer_numOutputStreams", want: "multiplexer.numOutputStreams"},
		{key: "echoSuppression_enabled", want: "echoSuppression.enabled"},
		{key: "p2p.preference", want: "p2p.preference"},
		{key: "foo_bar", want: "foo_bar"},
		{key: "session_id", want: "session_id"},
		{key: "connection_data", want: "connection_data"},
		{key: "P2P_preference", want: "P2P_preference"},
		{key: "", want: ""},
	}

	for i, testCase := range testCases {
		t.Run(fmt.Sprintf("case %d", i), func(t *testing.T) {
			// When.
			got := strutil.NormalizeKey(testCase.key)

			// Then.
			if got != testCase.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", testCase.key, got, testCase.want)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	for _, s := range []string{"", " ", "\t\n"} {
		if !strutil.IsBlank(s) {
			t.Errorf("IsBlank(%q) = false, want true", s)
		}
	}

	if strutil.IsBlank(" a ") {
		t.Error("IsBlank(\" a \") = true, want false")
	}
}

func TestRandomInt(t *testing.T) {
	for range 1000 {
		n := strutil.RandomInt(10)
		if n < 0 || n >= 10 {
			t.Fatalf("RandomInt(10) = %d, want a value in [0, 10)", n)
		}
	}
}
