// Package service signs users up and in through the Firebase Identity
// Toolkit REST API. The Admin SDK cannot exchange an email/password for an
// ID token, so these two calls go over HTTP with the project's web API key.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/company-mgmt/company-api-backend/internal/users/domain"
)

const defaultBaseURL = "https://identitytoolkit.googleapis.com"

// AccountStore mirrors new accounts into the document store. Optional.
type AccountStore interface {
	Ensure(ctx context.Context, uid, email string) error
}

type Service struct {
	apiKey   string
	baseURL  string
	client   *http.Client
	accounts AccountStore
}

func New(apiKey string, accounts AccountStore) *Service {
	return &Service{
		apiKey:   apiKey,
		baseURL:  defaultBaseURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		accounts: accounts,
	}
}

// WithBaseURL points the service at a different Identity Toolkit endpoint.
// Used by tests.
func (s *Service) WithBaseURL(u string) *Service {
	s.baseURL = strings.TrimRight(u, "/")
	return s
}

type authPayload struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type authResult struct {
	LocalID string `json:"localId"`
	IDToken string `json:"idToken"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignUp registers a new account and mirrors it into the store.
func (s *Service) SignUp(ctx context.Context, email, password string) (*domain.Session, error) {
	res, err := s.call(ctx, "accounts:signUp", email, password)
	if err != nil {
		return nil, err
	}

	if s.accounts != nil {
		// mirror failure is logged, not fatal: the account already exists
		if err := s.accounts.Ensure(ctx, res.LocalID, email); err != nil {
			log.Printf("user mirror write failed for uid=%s: %v", res.LocalID, err)
		}
	}

	return &domain.Session{UserID: res.LocalID, BearerToken: res.IDToken}, nil
}

// SignIn exchanges credentials for a session.
func (s *Service) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	res, err := s.call(ctx, "accounts:signInWithPassword", email, password)
	if err != nil {
		return nil, err
	}
	return &domain.Session{UserID: res.LocalID, BearerToken: res.IDToken}, nil
}

func (s *Service) call(ctx context.Context, endpoint, email, password string) (*authResult, error) {
	body, err := json.Marshal(authPayload{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/v1/%s?key=%s", s.baseURL, endpoint, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity toolkit request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var res authResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, mapAuthError(res.Error.Message, resp.StatusCode)
	}
	return &res, nil
}

func mapAuthError(message string, status int) error {
	switch {
	case strings.Contains(message, "EMAIL_EXISTS"):
		return domain.ErrEmailExists
	case strings.Contains(message, "EMAIL_NOT_FOUND"),
		strings.Contains(message, "INVALID_PASSWORD"),
		strings.Contains(message, "INVALID_LOGIN_CREDENTIALS"):
		return domain.ErrInvalidCredentials
	default:
		return fmt.Errorf("identity toolkit error (status %d): %s", status, message)
	}
}
