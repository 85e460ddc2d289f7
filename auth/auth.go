// Package auth manages the OAuth2 credentials used to access the Google Sheets API.
//
// A Manager loads the cached token from the token file, refreshes it once if it has
// expired and falls back to an interactive consent flow when there is no usable token.
// Any newly acquired token is written back to the token file.
package auth

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Consent acquires a new token interactively.
type Consent interface {
	Authorise(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error)
}

type Manager struct {
	config  *oauth2.Config
	tokens  string
	consent Consent
	log     *log.Logger

	mu    sync.Mutex
	token *oauth2.Token
}

// NewManager reads the OAuth2 client secrets from the credentials file (as downloaded
// from the Google Cloud console).
func NewManager(credentials, tokens string, scopes []string, consent Consent, logger *log.Logger) (*Manager, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, &AuthError{Op: "unable to read OAuth2 credentials", Err: err}
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, &AuthError{Op: "invalid OAuth2 credentials", Err: err}
	}

	return NewManagerWithConfig(config, tokens, consent, logger), nil
}

func NewManagerWithConfig(config *oauth2.Config, tokens string, consent Consent, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}

	return &Manager{
		config:  config,
		tokens:  tokens,
		consent: consent,
		log:     logger,
	}
}

// Token returns a valid token, refreshing it or running the consent flow as required.
func (m *Manager) Token(ctx context.Context) (*oauth2.Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != nil && m.token.Valid() {
		return m.token, nil
	}

	token, err := tokenFromFile(m.tokens)
	switch {
	case err == nil:
		m.log.Debug("loaded cached token", "file", m.tokens, "expiry", token.Expiry)

	case errors.Is(err, fs.ErrNotExist):
		m.log.Debug("no cached token", "file", m.tokens)

	case errors.Is(err, errCorruptToken):
		m.log.Warn("ignoring invalid token file", "file", m.tokens, "err", err)

	default:
		return nil, &AuthError{Op: "unable to read token file", Err: err}
	}

	if token != nil && token.Valid() {
		m.token = token
		return token, nil
	}

	if token != nil && token.RefreshToken != "" {
		if refreshed, err := m.config.TokenSource(ctx, token).Token(); err != nil {
			m.log.Warn("token refresh failed, requesting authorisation", "err", err)
		} else {
			m.log.Info("refreshed OAuth2 token")
			return m.persist(refreshed)
		}
	}

	if m.consent == nil {
		return nil, &AuthError{Op: "authorisation required", Err: fmt.Errorf("no interactive consent flow configured")}
	}

	token, err = m.consent.Authorise(ctx, m.config)
	if err != nil {
		return nil, &AuthError{Op: "authorisation failed", Err: err}
	} else if token == nil {
		return nil, &AuthError{Op: "authorisation failed", Err: fmt.Errorf("no token")}
	}

	return m.persist(token)
}

// Client returns an HTTP client authorised with the current token. A token refreshed
// while the client is in use is written back to the token file.
func (m *Manager) Client(ctx context.Context) (*http.Client, error) {
	token, err := m.Token(ctx)
	if err != nil {
		return nil, err
	}

	src := &persisting{
		manager: m,
		source:  m.config.TokenSource(ctx, token),
		last:    token.AccessToken,
	}

	return oauth2.NewClient(ctx, src), nil
}

func (m *Manager) persist(token *oauth2.Token) (*oauth2.Token, error) {
	if err := saveToken(m.tokens, token); err != nil {
		return nil, &AuthError{Op: "unable to save token", Err: err}
	}

	m.log.Debug("saved token", "file", m.tokens)
	m.token = token

	return token, nil
}

type persisting struct {
	manager *Manager
	source  oauth2.TokenSource

	mu   sync.Mutex
	last string
}

func (p *persisting) Token() (*oauth2.Token, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	token, err := p.source.Token()
	if err != nil {
		return nil, err
	}

	if token.AccessToken != p.last {
		p.manager.mu.Lock()
		_, err := p.manager.persist(token)
		p.manager.mu.Unlock()

		if err != nil {
			p.manager.log.Warn("refreshed token not saved", "err", err)
		}

		p.last = token.AccessToken
	}

	return token, nil
}
