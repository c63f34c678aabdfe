// Package salesapi é o cliente HTTP do colaborador de dados de vendas.
package salesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
)

type Client interface {
	FetchSales(ctx context.Context, token string) (*PagedResponse, error)
}

// StatusError é um erro de resposta HTTP do colaborador de vendas.
// StatusCode zero indica falha de transporte.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sales api: status %d", e.StatusCode)
}

// RawSaleRow é a linha crua como o backend devolve, antes da normalização.
// Os campos variam conforme a origem: o backend atual envia _id/date/total,
// fontes antigas enviam id/amount/country/user.
type RawSaleRow struct {
	ID       string `json:"_id"`
	LegacyID any    `json:"id"`
	Date     string `json:"date"`
	Total    any    `json:"total"`
	Amount   any    `json:"amount"`
	Country  string `json:"country"`
	User     string `json:"user"`
}

type PagedResponse struct {
	Rows     []RawSaleRow `json:"rows"`
	Total    int          `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
}

type SalesClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &SalesClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.SalesAPI.TimeoutSeconds) * time.Second,
		},
		config: cfg,
	}
}

func (c *SalesClient) FetchSales(ctx context.Context, token string) (*PagedResponse, error) {
	endpoint, err := url.Parse(c.config.SalesAPI.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/sales")

	query := endpoint.Query()
	query.Set("pageSize", strconv.Itoa(c.config.SalesAPI.PageSize))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &StatusError{StatusCode: 0}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var response PagedResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}
