// Package authapi é o cliente HTTP do colaborador de autenticação.
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

type Client interface {
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	Register(ctx context.Context, email, password string) (*LoginResponse, error)
	Me(ctx context.Context, token string) (*domain.User, error)
}

// StatusError é um erro de resposta HTTP do colaborador de autenticação.
// StatusCode zero indica falha de transporte (servidor inalcançável).
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("auth api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("auth api: status %d", e.StatusCode)
}

type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        *domain.User `json:"user"`
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &AuthClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.AuthAPI.TimeoutSeconds) * time.Second,
		},
		config: cfg,
	}
}

func (c *AuthClient) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	return c.postCredentials(ctx, "/login", email, password)
}

func (c *AuthClient) Register(ctx context.Context, email, password string) (*LoginResponse, error) {
	return c.postCredentials(ctx, "/register", email, password)
}

func (c *AuthClient) postCredentials(ctx context.Context, endpoint, email, password string) (*LoginResponse, error) {
	target, err := c.buildURL(endpoint)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(credentialsRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("erro ao codificar credenciais: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &StatusError{StatusCode: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, statusError(resp)
	}

	var response LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}

func (c *AuthClient) Me(ctx context.Context, token string) (*domain.User, error) {
	target, err := c.buildURL("/me")
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &StatusError{StatusCode: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var user domain.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &user, nil
}

func (c *AuthClient) buildURL(endpoint string) (string, error) {
	base, err := url.Parse(c.config.AuthAPI.URL)
	if err != nil {
		return "", fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	base.Path = path.Join(base.Path, endpoint)
	return base.String(), nil
}

// statusError monta um StatusError aproveitando a mensagem do corpo, se houver.
func statusError(resp *http.Response) *StatusError {
	serr := &StatusError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return serr
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Message != "" {
			serr.Message = payload.Message
		} else if payload.Error != "" {
			serr.Message = payload.Error
		}
	}

	return serr
}
