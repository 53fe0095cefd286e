// Package cngn is a client for the cNGN merchant API.
//
// Request bodies are AES-256-CBC encrypted with the merchant encryption key.
// Responses whose data field is a string are NaCl boxes sealed to the merchant's
// ed25519 key (converted to curve25519) and are opened transparently.
package cngn

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github/chapool/cngn-go/internal/config"
	"github/chapool/cngn-go/internal/util"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL       string
	apiKey        string
	encryptionKey string
	boxKey        *[32]byte
	httpClient    *http.Client
	random        io.Reader
}

type Option func(c *Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRandom replaces crypto/rand as the IV source.
func WithRandom(r io.Reader) Option {
	return func(c *Client) {
		c.random = r
	}
}

// NewClient builds a client for {BaseURL}/{APIVersion}/api.
// The private key is optional; without it encrypted responses fail with ErrMissingPrivateKey.
func NewClient(cfg config.CNGN, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("cNGN base URL is required")
	}
	if cfg.APIVersion == "" {
		return nil, errors.New("cNGN API version is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL:       fmt.Sprintf("%s/%s/api", cfg.BaseURL, cfg.APIVersion),
		apiKey:        cfg.APIKey,
		encryptionKey: cfg.EncryptionKey,
		httpClient:    &http.Client{Timeout: timeout},
		random:        rand.Reader,
	}

	if cfg.PrivateKey != "" {
		key, err := ParseOpenSSHPrivateKey(cfg.PrivateKey)
		if err != nil {
			return nil, err
		}

		c.boxKey, err = Curve25519PrivateKey(key)
		clear(key)
		if err != nil {
			return nil, err
		}
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) GetBalance(ctx context.Context) (*Response[[]Balance], error) {
	return call[[]Balance](ctx, c, http.MethodGet, "/balance", nil)
}

// GetTransactionHistory pages through transactions; non-positive values fall back to page 1 and limit 10.
func (c *Client) GetTransactionHistory(ctx context.Context, page int, limit int) (*Response[TransactionPage], error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	return call[TransactionPage](ctx, c, http.MethodGet, "/transactions?"+query.Encode(), nil)
}

func (c *Client) Withdraw(ctx context.Context, req Withdraw) (*Response[WithdrawResponse], error) {
	return call[WithdrawResponse](ctx, c, http.MethodPost, "/withdraw", req)
}

func (c *Client) VerifyWithdrawal(ctx context.Context, trxRef string) (*Response[Transaction], error) {
	return call[Transaction](ctx, c, http.MethodGet, "/withdraw/verify/"+url.PathEscape(trxRef), nil)
}

func (c *Client) RedeemAsset(ctx context.Context, req RedeemAsset) (*Response[Transaction], error) {
	return call[Transaction](ctx, c, http.MethodPost, "/redeemAsset", req)
}

func (c *Client) CreateVirtualAccount(ctx context.Context, req CreateVirtualAccount) (*Response[VirtualAccount], error) {
	return call[VirtualAccount](ctx, c, http.MethodPost, "/createVirtualAccount", req)
}

func (c *Client) UpdateExternalAccounts(ctx context.Context, req UpdateExternalAccount) (*Response[ExternalAccounts], error) {
	if err := req.Validate(); err != nil {
		return nil, &SetupError{Err: err}
	}

	return call[ExternalAccounts](ctx, c, http.MethodPost, "/updateBusiness", req)
}

func (c *Client) GetBanks(ctx context.Context) (*Response[[]Bank], error) {
	return call[[]Bank](ctx, c, http.MethodGet, "/banks", nil)
}

func (c *Client) SwapAsset(ctx context.Context, req Swap) (*Response[SwapResponse], error) {
	return call[SwapResponse](ctx, c, http.MethodPost, "/swap", req)
}

type rawResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

func call[T any](ctx context.Context, c *Client, method string, endpoint string, body any) (*Response[T], error) {
	log := util.LogFromContext(ctx).With().
		Str("component", "cngn").
		Str("method", method).
		Str("endpoint", endpoint).
		Logger()

	req, err := c.newRequest(ctx, method, endpoint, body)
	if err != nil {
		return nil, &SetupError{Err: err}
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Msg("cNGN request failed without response")
		return nil, &TransportError{Err: err}
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	log.Debug().Int("status", res.StatusCode).Dur("duration", time.Since(start)).Msg("cNGN request completed")

	var raw rawResponse
	decodeErr := json.Unmarshal(payload, &raw)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{StatusCode: res.StatusCode, Message: raw.Message}
	}

	if decodeErr != nil {
		return nil, errors.Wrap(decodeErr, "failed to decode cNGN response")
	}

	out := &Response[T]{Success: raw.Success, Error: raw.Error}

	data, err := c.plainData(raw.Data)
	if err != nil {
		return nil, err
	}

	if len(data) > 0 && !bytes.Equal(data, []byte("null")) {
		out.Data = new(T)
		if err := json.Unmarshal(data, out.Data); err != nil {
			return nil, errors.Wrap(err, "failed to decode cNGN response data")
		}
	}

	return out, nil
}

// plainData opens data when the API returned it as an encrypted string.
func (c *Client) plainData(data json.RawMessage) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return trimmed, nil
	}

	var sealed string
	if err := json.Unmarshal(trimmed, &sealed); err != nil {
		return nil, errors.Wrap(err, "failed to decode encrypted data")
	}

	if c.boxKey == nil {
		return nil, ErrMissingPrivateKey
	}

	return OpenBox(c.boxKey, sealed)
}

func (c *Client) newRequest(ctx context.Context, method string, endpoint string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		plaintext, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request body")
		}

		encrypted, err := EncryptAES(plaintext, c.encryptionKey, c.random)
		if err != nil {
			return nil, err
		}

		raw, err := json.Marshal(encrypted)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode encrypted body")
		}

		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return req, nil
}
