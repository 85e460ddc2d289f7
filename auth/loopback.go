package auth

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/browser"
	"golang.org/x/oauth2"
)

// DefaultConsentTimeout bounds how long Loopback waits for the browser callback.
const DefaultConsentTimeout = 5 * time.Minute

// Loopback runs the OAuth2 authorization code flow with a short-lived HTTP listener on
// 127.0.0.1 as the redirect target. The listener is closed before Authorise returns.
type Loopback struct {
	Timeout time.Duration
	Open    func(url string) error
	Out     io.Writer
	Log     *log.Logger
}

var page = template.Must(template.New("callback").Parse(`<!DOCTYPE html>
<html>
  <head><title>{{.Title}}</title></head>
  <body>
    <h3>{{.Title}}</h3>
    <p>{{.Message}}</p>
  </body>
</html>
`))

func NewLoopback(logger *log.Logger) *Loopback {
	return &Loopback{
		Timeout: DefaultConsentTimeout,
		Open:    browser.OpenURL,
		Out:     os.Stdout,
		Log:     logger,
	}
}

func (l *Loopback) Authorise(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	logger := l.Log
	if logger == nil {
		logger = log.Default()
	}

	out := l.Out
	if out == nil {
		out = os.Stdout
	}

	timeout := l.Timeout
	if timeout <= 0 {
		timeout = DefaultConsentTimeout
	}

	state, err := nonce()
	if err != nil {
		return nil, err
	}

	verifier := oauth2.GenerateVerifier()

	// ... start HTTP server on localhost
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("unable to start local callback listener (%w)", err)
	}

	defer listener.Close()

	conf := *config
	conf.RedirectURL = fmt.Sprintf("http://%v/", listener.Addr())

	codes := make(chan string, 1)
	errs := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, rq *http.Request) {
		if rq.URL.Path != "/" {
			http.NotFound(w, rq)
			return
		}

		logger.Debug("authorisation callback", "remote", rq.RemoteAddr)

		q := rq.URL.Query()
		switch {
		case q.Get("state") != state:
			render(w, http.StatusBadRequest, "Authorisation failed", "Invalid request state - please retry.")
			report(errs, fmt.Errorf("invalid OAuth2 callback state"))

		case q.Get("error") != "":
			render(w, http.StatusForbidden, "Authorisation failed", q.Get("error"))
			report(errs, fmt.Errorf("authorisation denied (%v)", q.Get("error")))

		case q.Get("code") == "":
			render(w, http.StatusBadRequest, "Authorisation failed", "Missing authorisation code.")
			report(errs, fmt.Errorf("missing OAuth2 authorisation code"))

		default:
			render(w, http.StatusOK, "Authorised", "You can close this window and return to the terminal.")
			select {
			case codes <- q.Get("code"):
			default:
			}
		}
	})

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			report(errs, err)
		}
	}()

	defer func() {
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdown); err != nil {
			logger.Warn("callback listener shutdown", "err", err)
		}
	}()

	// ... open OAuth2 URL in browser
	url := conf.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.S256ChallengeOption(verifier))

	fmt.Fprintf(out, "\nOpen the following link in your browser to authorise access to the spreadsheet:\n\n  %v\n\n", url)

	if l.Open != nil {
		if err := l.Open(url); err != nil {
			logger.Warn("could not open authorisation page in your browser - please open it manually", "err", err)
		}
	}

	// ... wait for authorisation
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("authorisation cancelled (%w)", ctx.Err())

	case err := <-errs:
		return nil, err

	case code := <-codes:
		token, err := conf.Exchange(ctx, code, oauth2.VerifierOption(verifier))
		if err != nil {
			return nil, fmt.Errorf("unable to retrieve token from web (%w)", err)
		}

		return token, nil
	}
}

func render(w http.ResponseWriter, status int, title, message string) {
	var b bytes.Buffer

	if err := page.Execute(&b, map[string]string{"Title": title, "Message": message}); err != nil {
		http.Error(w, "Error formatting page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(b.Bytes())
}

func report(errs chan<- error, err error) {
	select {
	case errs <- err:
	default:
	}
}

func nonce() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
