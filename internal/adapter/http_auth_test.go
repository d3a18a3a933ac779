package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medvision-ai/medvision-client/internal/config"
	"github.com/medvision-ai/medvision-client/internal/logger"
	"github.com/medvision-ai/medvision-client/models"
)

func newTestAuthAdapter(t *testing.T, serverURL string) AuthAdapter {
	t.Helper()
	return NewHTTPAuthAdapter(config.ClientAdapter{AuthURL: serverURL}, logger.Nop())
}

func TestAuthLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "doc@clinic.org", req.Email)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			User:  models.User{ID: "u-1", Email: req.Email, Role: models.RoleDoctor},
			Token: "remote-token",
		})
	}))
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Email: "doc@clinic.org", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "u-1", got.User.ID)
	assert.Equal(t, "remote-token", got.Token)
}

func TestAuthLogin_UnauthorizedCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Message: "Invalid credentials"})
	}))
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "x@y.z", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestAuthRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			User:  models.User{ID: "u-2", Name: req.Name, Email: req.Email, Role: req.Role},
			Token: "fresh-token",
		})
	}))
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.RegisterRequest{
		Name: "Dr. Chen", Email: "chen@clinic.org", Password: "pw", Role: models.RoleDoctor,
	})

	require.NoError(t, err)
	assert.Equal(t, "u-2", got.User.ID)
	assert.Equal(t, "fresh-token", got.Token)
}

func TestAuthRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Message: "Email already registered"})
	}))
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{Email: "dup@clinic.org"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "Email already registered")
}

func TestAuthLogin_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before use

	a := newTestAuthAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "x@y.z", Password: "pw"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "login request")
}
