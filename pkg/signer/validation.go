package signer

import (
	"errors"
	"strings"

	"github.com/luikyv/gotok/internal/strutil"
	"github.com/luikyv/gotok/pkg/gotok"
)

func (s *Signer) validate() error {
	return runValidations(
		s,
		validateKey,
		validateSecret,
		validateServerURL,
		validateTokenSentinel,
		validateSDKVersion,
	)
}

func runValidations(s *Signer, validators ...func(*Signer) error) error {
	for _, validator := range validators {
		if err := validator(s); err != nil {
			return gotok.WrapError(gotok.ErrorCodeInvalidConfiguration, "invalid signer configuration", err)
		}
	}
	return nil
}

func validateKey(s *Signer) error {
	if strutil.IsBlank(s.config.Credentials.Key) {
		return errors.New("api key is required")
	}
	return nil
}

func validateSecret(s *Signer) error {
	if strutil.IsBlank(s.config.Credentials.Secret) {
		return errors.New("secret key is required")
	}
	return nil
}

func validateServerURL(s *Signer) error {
	if strutil.IsBlank(strings.TrimRight(s.config.Credentials.ServerURL, "/")) {
		return errors.New("server is required")
	}
	return nil
}

func validateTokenSentinel(s *Signer) error {
	if strutil.IsBlank(s.config.TokenSentinel) {
		return errors.New("token sentinel is required")
	}
	return nil
}

func validateSDKVersion(s *Signer) error {
	if strutil.IsBlank(s.config.SDKVersion) {
		return errors.New("sdk version is required")
	}
	return nil
}
