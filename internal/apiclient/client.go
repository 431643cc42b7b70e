// Package apiclient provides an HTTP client for the multisend REST API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Klingon-tech/multisend/internal/api"
	"github.com/Klingon-tech/multisend/internal/history"
	"github.com/Klingon-tech/multisend/internal/tokens"
	"github.com/Klingon-tech/multisend/internal/validation"
	"github.com/Klingon-tech/multisend/pkg/fee"
)

// Client is a multisend API HTTP client.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a new client targeting the given server URL, e.g.
// "http://127.0.0.1:8001".
func New(baseURL string) *Client {
	return NewWithTimeout(baseURL, 10*time.Second)
}

// NewWithTimeout creates a new client with a custom HTTP timeout.
func NewWithTimeout(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// APIError is returned when the server responds with a non-2xx status.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Detail)
}

// do sends a request to path and decodes a JSON response into result.
// If result is nil, the response body is discarded.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e api.ErrorResult
		if json.Unmarshal(data, &e) != nil || e.Detail == "" {
			e.Detail = strings.TrimSpace(string(data))
		}
		return &APIError{Status: resp.StatusCode, Detail: e.Detail}
	}

	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, params, result interface{}) error {
	body, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, "application/json", bytes.NewReader(body), result)
}

// Info returns the service name and version.
func (c *Client) Info(ctx context.Context) (*api.RootResult, error) {
	var res api.RootResult
	if err := c.do(ctx, http.MethodGet, "/api/", "", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ValidateRecipients checks every recipient of req.
func (c *Client) ValidateRecipients(ctx context.Context, req *api.MultiSendRequest) (*validation.Response, error) {
	var res validation.Response
	if err := c.postJSON(ctx, "/api/validate-recipients", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// EstimateFees computes the cost of sending req.
func (c *Client) EstimateFees(ctx context.Context, req *api.MultiSendRequest) (*fee.Estimate, error) {
	var res fee.Estimate
	if err := c.postJSON(ctx, "/api/estimate-fees", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ParseCSV uploads a recipient list for parsing.
func (c *Client) ParseCSV(ctx context.Context, filename string, r io.Reader) (*api.ParseCSVResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close form: %w", err)
	}

	var res api.ParseCSVResult
	if err := c.do(ctx, http.MethodPost, "/api/parse-csv", mw.FormDataContentType(), &buf, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// TokenList returns the tokens the server offers.
func (c *Client) TokenList(ctx context.Context) ([]tokens.Token, error) {
	var res api.TokenListResult
	if err := c.do(ctx, http.MethodGet, "/api/token-list", "", nil, &res); err != nil {
		return nil, err
	}
	return res.Tokens, nil
}

// SaveTransaction stores a history record and returns the stored copy.
func (c *Client) SaveTransaction(ctx context.Context, rec history.Record) (*history.Record, error) {
	var res history.Record
	if err := c.postJSON(ctx, "/api/save-transaction", rec, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// TransactionHistory lists a sender's records, newest first. A limit below
// 1 uses the server default.
func (c *Client) TransactionHistory(ctx context.Context, wallet string, limit int) ([]history.Record, error) {
	path := "/api/transaction-history/" + url.PathEscape(wallet)
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var res api.HistoryResult
	if err := c.do(ctx, http.MethodGet, path, "", nil, &res); err != nil {
		return nil, err
	}
	return res.Transactions, nil
}

// Transaction returns one history record by ID.
func (c *Client) Transaction(ctx context.Context, id string) (*history.Record, error) {
	var res history.Record
	if err := c.do(ctx, http.MethodGet, "/api/transaction/"+url.PathEscape(id), "", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
