package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/badriyvp/musegen/internal/common"
)

// HTTPClient implements Client over the server's JSON API. Two underlying
// http.Clients are used: a short-timeout one for control calls and a
// long-timeout one for image generation, which routinely takes minutes.
type HTTPClient struct {
	baseURL    string
	http       *http.Client
	generation *http.Client
	token      string
}

func NewHTTPClient(baseURL string, requestTimeout, generationTimeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		http:       &http.Client{Timeout: requestTimeout},
		generation: &http.Client{Timeout: generationTimeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	c.generation.CloseIdleConnections()
	return nil
}

type serverError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// doJSON runs one request/response round trip. A nil out skips body decoding.
func (c *HTTPClient) doJSON(ctx context.Context, hc *http.Client, method, path string, in, out any, wantStatus int) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AuthHeaderName, "Bearer "+c.token)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return c.mapError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// mapError translates the server's error responses into sentinel errors the
// session layer can match on.
func (c *HTTPClient) mapError(resp *http.Response) error {
	var se serverError
	_ = json.NewDecoder(resp.Body).Decode(&se)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusForbidden:
		return common.ErrInvalidToken
	case http.StatusBadRequest:
		switch se.Message {
		case "User already exists":
			return common.ErrorAlreadyExists
		case "User not found":
			return common.ErrorNotFound
		case "Invalid password":
			return common.ErrorInvalidCredentials
		}
	}

	msg := se.Message
	if msg == "" {
		msg = se.Error
	}
	if msg == "" {
		msg = resp.Status
	}
	return fmt.Errorf("server error: %s", msg)
}

func (c *HTTPClient) Register(ctx context.Context, name, email string, password []byte) error {
	in := map[string]string{"name": name, "email": email, "password": string(password)}
	return c.doJSON(ctx, c.http, http.MethodPost, "/api/auth/register", in, nil, http.StatusCreated)
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (string, error) {
	in := map[string]string{"email": email, "password": string(password)}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, c.http, http.MethodPost, "/api/auth/login", in, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*User, error) {
	var out User
	if err := c.doJSON(ctx, c.http, http.MethodGet, "/api/auth/user", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) GenerateImage(ctx context.Context, prompt string) (*Generation, error) {
	in := map[string]string{"prompt": prompt}
	var out struct {
		Data []*Generation `json:"data"`
	}
	if err := c.doJSON(ctx, c.generation, http.MethodPost, "/api/ai", in, &out, http.StatusOK); err != nil {
		return nil, err
	}
	if len(out.Data) == 0 {
		return nil, fmt.Errorf("empty generation response")
	}
	return out.Data[0], nil
}

func (c *HTTPClient) History(ctx context.Context) ([]*Generation, error) {
	var out struct {
		Data []*Generation `json:"data"`
	}
	if err := c.doJSON(ctx, c.http, http.MethodGet, "/api/ai/history", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.doJSON(ctx, c.http, http.MethodGet, "/api/health", nil, nil, http.StatusOK)
}
