// Command gotok creates sessions and signs participant tokens from the
// command line.
//
//	gotok [-config gotok.yaml] session [-location ip] [-p2p enabled|disabled]
//	gotok [-config gotok.yaml] token -session id [-role publisher] [-expire 1h] [-data text] [-claim key=value]...
//	gotok [-config gotok.yaml] inspect token
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/luikyv/gotok/internal/config"
	"github.com/luikyv/gotok/pkg/gotok"
	"github.com/luikyv/gotok/pkg/signer"
	"github.com/rs/zerolog"
)

const defaultConfigPath = "gotok.yaml"

var errUsage = errors.New("usage: gotok [-config file] session|token|inspect [flags]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...signer.Option) error {
	flags := flag.NewFlagSet("gotok", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", defaultConfigPath, "path of the YAML config file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if flags.NArg() == 0 {
		return errUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cfg.Debug)
	opts = append(cfg.SignerOptions(), append(opts,
		signer.WithLogger(newSlogLogger(logger)),
		signer.WithStrictClaims(),
	)...)
	s, err := signer.New(cfg.Credentials, opts...)
	if err != nil {
		logger.Error().Err(err).Msg("could not create the signer")
		return err
	}

	command, commandArgs := flags.Arg(0), flags.Args()[1:]
	switch command {
	case "session":
		return runSession(ctx, s, logger, commandArgs, stdout, stderr)
	case "token":
		return runToken(ctx, s, logger, commandArgs, stdout, stderr)
	case "inspect":
		return runInspect(s, commandArgs, stdout)
	default:
		return errUsage
	}
}

func runSession(
	ctx context.Context,
	s *signer.Signer,
	logger zerolog.Logger,
	args []string,
	stdout, stderr io.Writer,
) error {
	flags := flag.NewFlagSet("session", flag.ContinueOnError)
	flags.SetOutput(stderr)
	location := flags.String("location", "", "IP address hint used to situate the session")
	p2p := flags.String("p2p", "", "peer to peer preference, enabled or disabled")
	if err := flags.Parse(args); err != nil {
		return err
	}

	opts := &gotok.SessionOptions{P2PPreference: gotok.P2PPreference(*p2p)}
	sessionID, err := s.CreateSession(ctx, *location, opts)
	if err != nil {
		logger.Error().Err(err).Str("location", *location).Msg("session creation failed")
		return err
	}

	logger.Info().Str("session_id", sessionID).Msg("session created")
	fmt.Fprintln(stdout, sessionID)
	return nil
}

func runToken(
	ctx context.Context,
	s *signer.Signer,
	logger zerolog.Logger,
	args []string,
	stdout, stderr io.Writer,
) error {
	flags := flag.NewFlagSet("token", flag.ContinueOnError)
	flags.SetOutput(stderr)
	sessionID := flags.String("session", "", "session ID the token admits into")
	role := flags.String("role", string(gotok.RolePublisher), "subscriber, publisher or moderator")
	expire := flags.Duration("expire", 0, "lifetime of the token, the platform default when zero")
	data := flags.String("data", "", "connection data")
	claims := map[string]string{}
	flags.Func("claim", "additional claim as key=value, may be repeated", func(value string) error {
		key, val, ok := strings.Cut(value, "=")
		if !ok || key == "" {
			return fmt.Errorf("invalid claim %q, expected key=value", value)
		}
		claims[key] = val
		return nil
	})
	if err := flags.Parse(args); err != nil {
		return err
	}

	opts := &gotok.TokenOptions{
		Role:           gotok.Role(*role),
		ConnectionData: *data,
	}
	opts.AddClaims(claims)
	if *expire > 0 {
		opts.ExpireTime = time.Now().Add(*expire)
	}

	issued, err := s.IssueToken(ctx, *sessionID, opts)
	if err != nil {
		logger.Error().Err(err).Str("session_id", *sessionID).Msg("token issuance failed")
		return err
	}

	fmt.Fprintln(stdout, issued.Token)
	return nil
}

func runInspect(s *signer.Signer, args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return errUsage
	}

	payload, err := s.VerifyToken(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "partner_id=%s\nsdk_version=%s\nsig=%s\n", payload.PartnerID, payload.SDKVersion, payload.Signature)
	fmt.Fprintln(stdout, payload.EncodedClaims)
	return nil
}
