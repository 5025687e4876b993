package session

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/luikyv/gotok/pkg/gotok"
)

const (
	EndpointCreate    = "/session/create"
	HeaderPartnerAuth = "X-Partner-Auth"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 1 << 20

// HTTPCreator creates sessions with the platform REST endpoint.
// Every request closes its connection and is never retried.
type HTTPCreator struct {
	client   *http.Client
	endpoint string
	auth     string
	logger   *slog.Logger
}

func NewHTTPCreator(
	client *http.Client,
	creds gotok.Credentials,
	logger *slog.Logger,
) *HTTPCreator {
	return &HTTPCreator{
		client:   client,
		endpoint: creds.ServerURL + EndpointCreate,
		auth:     creds.Key + ":" + creds.Secret,
		logger:   logger,
	}
}

func (c *HTTPCreator) CreateSession(ctx context.Context, params url.Values) (string, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.endpoint,
		strings.NewReader(params.Encode()),
	)
	if err != nil {
		return "", gotok.WrapError(gotok.ErrorCodeSessionCreation, "could not build the request", err)
	}
	req.Close = true
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(HeaderPartnerAuth, c.auth)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", gotok.WrapError(gotok.ErrorCodeSessionCreation, "the request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "session creation rejected", slog.Int("status", resp.StatusCode))
		return "", gotok.NewError(
			gotok.ErrorCodeSessionCreation,
			fmt.Sprintf("the platform responded with status %d", resp.StatusCode),
		).WithStatus(resp.StatusCode)
	}

	sessionID, err := ParseSessionID(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", err
	}

	return sessionID, nil
}

// ParseSessionID extracts the text of the first "session_id" element of an
// XML document.
func ParseSessionID(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	for {
		t, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return "", gotok.NewError(gotok.ErrorCodeSessionCreation, "the response has no session_id element")
		}
		if err != nil {
			return "", gotok.WrapError(gotok.ErrorCodeSessionCreation, "the response is not valid xml", err)
		}

		start, ok := t.(xml.StartElement)
		if !ok || start.Name.Local != "session_id" {
			continue
		}

		var sessionID string
		if err := decoder.DecodeElement(&sessionID, &start); err != nil {
			return "", gotok.WrapError(gotok.ErrorCodeSessionCreation, "could not read the session_id element", err)
		}

		sessionID = strings.TrimSpace(sessionID)
		if sessionID == "" {
			return "", gotok.NewError(gotok.ErrorCodeSessionCreation, "the session_id element is empty")
		}
		return sessionID, nil
	}
}
