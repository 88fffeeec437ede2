package catlink

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client is a CatLink cloud API client bound to one region's base URL.
//
// A Client holds the session token for that region; [Client.Login]
// replaces it. The Client performs no retries of its own.
type Client struct {
	baseURL string
	token   string
	http    *resty.Client
	options *Options
}

// New creates a Client for the given API base URL.
func New(baseURL string, opts ...Option) *Client {
	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	httpc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(options.timeout).
		SetHeader("User-Agent", options.userAgent).
		SetHeader("language", options.language).
		SetLogger(options.requestLogger)

	if !options.verifySSL {
		httpc.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) // #nosec G402 -- user-requested --no-verify
	}

	return &Client{
		baseURL: baseURL,
		token:   options.token,
		http:    httpc,
		options: options,
	}
}

// Token returns the current session token.
func (c *Client) Token() string {
	return c.token
}

// envelope is the vendor response wrapper common to every endpoint.
type envelope struct {
	ReturnCode int             `json:"returnCode"`
	Msg        string          `json:"msg"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

func (e envelope) errorMessage() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Message
}

// request performs one signed request and classifies the vendor response:
// returnCode 0 yields the data payload, 1002 yields ErrTokenExpired, any
// other code yields an *APIError. Transport errors, unexpected HTTP
// statuses, and malformed bodies are returned verbatim, never swallowed.
func (c *Client) request(ctx context.Context, method, path string, params map[string]string) (json.RawMessage, error) {
	pms := make(map[string]string, len(params)+3)
	for k, v := range params {
		pms[k] = v
	}
	pms["noncestr"] = strconv.FormatInt(time.Now().UnixMilli(), 10)
	if c.token != "" {
		pms["token"] = c.token
	}
	pms["sign"] = signParams(pms)

	req := c.http.R().
		SetContext(ctx).
		SetHeader("token", c.token)

	var (
		resp *resty.Response
		err  error
	)
	if method == http.MethodGet {
		resp, err = req.SetQueryParams(pms).Get(path)
	} else {
		resp, err = req.SetFormData(pms).Post(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	var env envelope
	if uerr := json.Unmarshal(resp.Body(), &env); uerr != nil {
		if resp.IsError() {
			return nil, fmt.Errorf("%s %s: unexpected status %s: %s", method, path, resp.Status(), truncateBody(resp.Body()))
		}
		return nil, fmt.Errorf("%s %s: malformed response body: %w", method, path, uerr)
	}

	c.options.requestLogger.Debugf("catlink: %s %s -> returnCode=%d", method, path, env.ReturnCode)

	switch {
	case env.ReturnCode == returnCodeTokenExpired:
		return nil, ErrTokenExpired
	case env.ReturnCode != returnCodeOK:
		return nil, &APIError{Code: env.ReturnCode, Message: env.errorMessage()}
	}
	return env.Data, nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	data, err := c.request(ctx, http.MethodGet, path, params)
	if err != nil {
		return err
	}
	return decodePayload(path, data, out)
}

func (c *Client) post(ctx context.Context, path string, params map[string]string, out any) error {
	data, err := c.request(ctx, http.MethodPost, path, params)
	if err != nil {
		return err
	}
	return decodePayload(path, data, out)
}

func decodePayload(path string, data json.RawMessage, out any) error {
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode payload: %w", path, err)
	}
	return nil
}

func truncateBody(body []byte) string {
	const max = 256
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
