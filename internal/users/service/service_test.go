package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/company-mgmt/company-api-backend/internal/users/domain"
)

type recordingStore struct {
	uid, email string
}

func (r *recordingStore) Ensure(_ context.Context, uid, email string) error {
	r.uid, r.email = uid, email
	return nil
}

func fakeIdentityToolkit(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestSignUp_Success(t *testing.T) {
	srv := fakeIdentityToolkit(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.True(t, strings.HasPrefix(r.URL.Path, "/v1/accounts:signUp"))
		require.Equal(t, "test-key", r.URL.Query().Get("key"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "a@example.com", payload["email"])
		assert.Equal(t, true, payload["returnSecureToken"])

		_ = json.NewEncoder(w).Encode(map[string]string{
			"localId": "uid-1",
			"idToken": "token-1",
		})
	})

	store := &recordingStore{}
	svc := New("test-key", store).WithBaseURL(srv.URL)

	session, err := svc.SignUp(context.Background(), "a@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", session.UserID)
	assert.Equal(t, "token-1", session.BearerToken)
	assert.Equal(t, "uid-1", store.uid)
	assert.Equal(t, "a@example.com", store.email)
}

func TestSignUp_EmailExists(t *testing.T) {
	srv := fakeIdentityToolkit(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"message": "EMAIL_EXISTS"}}`))
	})

	svc := New("test-key", nil).WithBaseURL(srv.URL)

	_, err := svc.SignUp(context.Background(), "a@example.com", "secret")
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestSignIn_Success(t *testing.T) {
	srv := fakeIdentityToolkit(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.URL.Path, "/v1/accounts:signInWithPassword"))
		_ = json.NewEncoder(w).Encode(map[string]string{
			"localId": "uid-2",
			"idToken": "token-2",
		})
	})

	svc := New("test-key", nil).WithBaseURL(srv.URL)

	session, err := svc.SignIn(context.Background(), "a@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "uid-2", session.UserID)
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	srv := fakeIdentityToolkit(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"message": "INVALID_LOGIN_CREDENTIALS"}}`))
	})

	svc := New("test-key", nil).WithBaseURL(srv.URL)

	_, err := svc.SignIn(context.Background(), "a@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestSignIn_UnexpectedError(t *testing.T) {
	srv := fakeIdentityToolkit(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "BACKEND_ERROR"}}`))
	})

	svc := New("test-key", nil).WithBaseURL(srv.URL)

	_, err := svc.SignIn(context.Background(), "a@example.com", "pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BACKEND_ERROR")
}
