package gcal

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"github.com/studyflow/studyflow/infra/logger"
)

const authCallbackPort = "6789"

// getClient builds an authenticated HTTP client from the cached token file,
// running the installed-app OAuth flow when no usable token exists.
func getClient(ctx context.Context, cfg Config, log logger.Logger) (*http.Client, error) {
	b, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}
	oauthCfg, err := google.ConfigFromJSON(b, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials file: %w", err)
	}
	oauthCfg.RedirectURL = "http://localhost:" + authCallbackPort + "/oauth2callback"

	token, err := tokenFromFile(cfg.TokenFile)
	if err != nil {
		log.Infof("no cached token, starting browser authorization")
		token, err = tokenFromWeb(ctx, oauthCfg, log)
		if err != nil {
			return nil, err
		}
		if err := saveToken(cfg.TokenFile, token); err != nil {
			log.Warnf("could not cache token: %v", err)
		}
	}
	return oauthCfg.Client(ctx, token), nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, err
	}
	return token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return json.NewEncoder(f).Encode(token)
}

// tokenFromWeb runs a one-shot local callback server to capture the OAuth
// authorization code.
func tokenFromWeb(ctx context.Context, cfg *oauth2.Config, log logger.Logger) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp", "localhost:"+authCallbackPort)
	if err != nil {
		return nil, fmt.Errorf("listen for oauth callback: %w", err)
	}
	defer func() { _ = listener.Close() }()

	codeCh := make(chan string, 1)
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}
		fmt.Fprintln(w, "Authorization received, you can close this tab.")
		codeCh <- code
	})}
	go func() { _ = srv.Serve(listener) }()
	defer func() { _ = srv.Close() }()

	url := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	log.Infof("open the following URL in your browser:\n%s", url)

	select {
	case code := <-codeCh:
		return cfg.Exchange(ctx, code)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
