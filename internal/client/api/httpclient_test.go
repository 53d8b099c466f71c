package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badriyvp/musegen/internal/common"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second, 5*time.Second)
}

func TestRegister_Success(t *testing.T) {
	var gotPath, gotBody string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var m map[string]string
		_ = json.NewDecoder(r.Body).Decode(&m)
		gotBody = m["email"]
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})

	err := c.Register(context.Background(), "Ada", "ada@example.com", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, "/api/auth/register", gotPath)
	assert.Equal(t, "ada@example.com", gotBody)
}

func TestRegister_AlreadyExists(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "User already exists"})
	})

	err := c.Register(context.Background(), "Ada", "ada@example.com", []byte("pw"))
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestLogin_ReturnsToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
	})

	token, err := c.Login(context.Background(), "ada@example.com", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestLogin_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    error
	}{
		{"unknown email", "User not found", common.ErrorNotFound},
		{"wrong password", "Invalid password", common.ErrorInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": tt.message})
			})

			_, err := c.Login(context.Background(), "ada@example.com", []byte("pw"))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCurrentUser_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(common.AuthHeaderName)
		_ = json.NewEncoder(w).Encode(User{ID: "u1", Name: "Ada", Email: "ada@example.com"})
	})
	c.SetToken("tok-123")

	u, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "Ada", u.Name)
}

func TestCurrentUser_MissingToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
	})

	_, err := c.CurrentUser(context.Background())
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestCurrentUser_InvalidToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid token"})
	})
	c.SetToken("garbage")

	_, err := c.CurrentUser(context.Background())
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGenerateImage_ReturnsFirstResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ai", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]string{
				{"url": "https://cdn.example.com/img.png", "revised_prompt": "refined"},
			},
		})
	})
	c.SetToken("tok")

	g, err := c.GenerateImage(context.Background(), "a lighthouse")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/img.png", g.URL)
	assert.Equal(t, "refined", g.RevisedPrompt)
}

func TestGenerateImage_EmptyData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})

	_, err := c.GenerateImage(context.Background(), "x")
	assert.Error(t, err)
}

func TestHistory_ReturnsRows(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ai/history", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]string{
				{"prompt": "second"},
				{"prompt": "first"},
			},
		})
	})
	c.SetToken("tok")

	rows, err := c.History(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "second", rows[0].Prompt)
}

func TestPing_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := NewHTTPClient(srv.URL, time.Second, time.Second)

	err := c.Ping(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
