package signer

import (
	"io"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/luikyv/gotok/internal/strutil"
	"github.com/luikyv/gotok/pkg/gotok"
)

func defaultNonceFunc() int {
	return strutil.RandomInt(gotok.MaxNonce)
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// defaultHTTPClient keeps the transport defaults, timeouts included.
func defaultHTTPClient() *http.Client {
	return &http.Client{}
}

func nonEmptyOrDefault[T any](s1 T, s2 T) T {
	if reflect.ValueOf(s1).String() == "" {
		return s2
	}

	return s1
}

func nonNilOrDefault[T any](s1 T, s2 T) T {
	v := reflect.ValueOf(s1)
	if !v.IsValid() {
		return s2
	}

	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		if v.IsNil() {
			return s2
		}
	}

	return s1
}
