package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/c-e-daly/prophet-sub001/pkg/errors"
	"github.com/c-e-daly/prophet-sub001/pkg/money"
)

const (
	defaultAPIVersion           = "2024-10"
	responseBodyReadLimit int64 = 64 * 1024
)

var errAccessTokenRequired = errors.New("shopify access token is required")

// Client wraps the Shopify Admin REST endpoints used for discount issuance.
// One client serves every shop; the shop domain is passed per call.
type Client struct {
	httpClient  *http.Client
	accessToken string
	apiVersion  string
	baseURL     string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithAPIVersion overrides the default Admin API version.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(version)
		if trimmed != "" {
			c.apiVersion = trimmed
		}
	}
}

// WithBaseURL points every request at a fixed base URL instead of deriving
// it from the shop domain. Test servers rely on this.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSpace(baseURL)
	}
}

// NewClient builds the Shopify Admin client given an access token.
func NewClient(accessToken string, opts ...Option) (*Client, error) {
	trimmedToken := strings.TrimSpace(accessToken)
	if trimmedToken == "" {
		return nil, errAccessTokenRequired
	}

	client := &Client{
		accessToken: trimmedToken,
		apiVersion:  defaultAPIVersion,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if client.apiVersion == "" {
		client.apiVersion = defaultAPIVersion
	}

	return client, nil
}

// DiscountRequest describes the discount to create on the platform. Exactly
// one of ValueCents or ValuePercent should be set; ValueCents wins when both
// are.
type DiscountRequest struct {
	Title           string
	Code            string
	ValueCents      int
	ValuePercent    float64
	OncePerCustomer bool
	CombinesWith    []string
	StartsAt        time.Time
	EndsAt          *time.Time
}

// DiscountResult is the normalized outcome of a creation call. Raw always
// holds the last platform response body, success or failure, so callers can
// persist it verbatim.
type DiscountResult struct {
	PriceRuleID int64
	DiscountID  int64
	Code        string
	Raw         json.RawMessage
}

// ValidationErrors is the field-error map Shopify returns with a 422.
type ValidationErrors map[string][]string

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for field, messages := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(messages, ", ")))
	}
	return strings.Join(parts, "; ")
}

// CreateDiscount creates a price rule and attaches a discount code to it.
// The returned result is non-nil whenever the platform answered, even on
// failure, so the caller can record the raw response before handling the
// error.
func (c *Client) CreateDiscount(ctx context.Context, shopDomain string, req DiscountRequest) (*DiscountResult, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "shopify client not configured")
	}
	if strings.TrimSpace(shopDomain) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shop domain is required")
	}
	if strings.TrimSpace(req.Code) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "discount code is required")
	}
	if req.ValueCents <= 0 && req.ValuePercent <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "discount value is required")
	}

	result, err := c.createPriceRule(ctx, shopDomain, req)
	if err != nil {
		return result, err
	}

	codeResult, err := c.createDiscountCode(ctx, shopDomain, result.PriceRuleID, req.Code)
	if err != nil {
		if codeResult != nil {
			result.Raw = codeResult.Raw
		}
		return result, err
	}

	result.DiscountID = codeResult.DiscountID
	result.Code = codeResult.Code
	result.Raw = codeResult.Raw
	return result, nil
}

type priceRulePayload struct {
	Title            string   `json:"title"`
	TargetType       string   `json:"target_type"`
	TargetSelection  string   `json:"target_selection"`
	AllocationMethod string   `json:"allocation_method"`
	ValueType        string   `json:"value_type"`
	Value            string   `json:"value"`
	CustomerSel      string   `json:"customer_selection"`
	OncePerCustomer  bool     `json:"once_per_customer"`
	CombinesWith     []string `json:"combines_with,omitempty"`
	StartsAt         string   `json:"starts_at"`
	EndsAt           *string  `json:"ends_at,omitempty"`
}

func (c *Client) createPriceRule(ctx context.Context, shopDomain string, req DiscountRequest) (*DiscountResult, error) {
	payload := priceRulePayload{
		Title:            req.Title,
		TargetType:       "line_item",
		TargetSelection:  "all",
		AllocationMethod: "across",
		CustomerSel:      "all",
		OncePerCustomer:  req.OncePerCustomer,
		CombinesWith:     req.CombinesWith,
		StartsAt:         req.StartsAt.UTC().Format(time.RFC3339),
	}
	if req.ValueCents > 0 {
		payload.ValueType = "fixed_amount"
		payload.Value = "-" + money.FormatCents(req.ValueCents)
	} else {
		payload.ValueType = "percentage"
		payload.Value = fmt.Sprintf("-%.1f", req.ValuePercent)
	}
	if req.EndsAt != nil {
		ends := req.EndsAt.UTC().Format(time.RFC3339)
		payload.EndsAt = &ends
	}

	body, raw, err := c.post(ctx, shopDomain, "price_rules.json", map[string]any{"price_rule": payload})
	if err != nil {
		return &DiscountResult{Raw: raw}, err
	}

	var resp struct {
		PriceRule struct {
			ID int64 `json:"id"`
		} `json:"price_rule"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return &DiscountResult{Raw: raw}, pkgerrors.Wrap(pkgerrors.CodePlatform, err, "decode price rule response")
	}
	if resp.PriceRule.ID == 0 {
		return &DiscountResult{Raw: raw}, pkgerrors.New(pkgerrors.CodePlatform, "price rule response missing id")
	}

	return &DiscountResult{PriceRuleID: resp.PriceRule.ID, Raw: raw}, nil
}

func (c *Client) createDiscountCode(ctx context.Context, shopDomain string, priceRuleID int64, code string) (*DiscountResult, error) {
	path := fmt.Sprintf("price_rules/%d/discount_codes.json", priceRuleID)
	body, raw, err := c.post(ctx, shopDomain, path, map[string]any{
		"discount_code": map[string]string{"code": code},
	})
	if err != nil {
		return &DiscountResult{Raw: raw}, err
	}

	var resp struct {
		DiscountCode struct {
			ID   int64  `json:"id"`
			Code string `json:"code"`
		} `json:"discount_code"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return &DiscountResult{Raw: raw}, pkgerrors.Wrap(pkgerrors.CodePlatform, err, "decode discount code response")
	}

	return &DiscountResult{DiscountID: resp.DiscountCode.ID, Code: resp.DiscountCode.Code, Raw: raw}, nil
}

// post sends one Admin API request and returns the decoded-ready body plus
// the raw bytes for persistence. 422 responses surface as ValidationErrors
// wrapped in a platform error; other non-2xx statuses become platform errors
// with the truncated body in the message.
func (c *Client) post(ctx context.Context, shopDomain, path string, payload any) ([]byte, json.RawMessage, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodePlatform, err, "marshal platform request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(shopDomain, path), bytes.NewReader(encoded))
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodePlatform, err, "build platform request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Shopify-Access-Token", c.accessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodePlatform, err, "execute platform request")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodePlatform, err, "read platform response")
	}
	raw := json.RawMessage(body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, raw, nil
	case resp.StatusCode == http.StatusUnprocessableEntity:
		var errResp struct {
			Errors ValidationErrors `json:"errors"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil && len(errResp.Errors) > 0 {
			return nil, raw, pkgerrors.Wrap(pkgerrors.CodePlatform, errResp.Errors, "platform rejected discount").WithDetails(errResp.Errors)
		}
		return nil, raw, pkgerrors.New(pkgerrors.CodePlatform, "platform rejected discount")
	default:
		return nil, raw, pkgerrors.Wrap(
			pkgerrors.CodePlatform,
			fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
			"platform request failed",
		)
	}
}

func (c *Client) endpoint(shopDomain, path string) string {
	base := c.baseURL
	if base == "" {
		base = fmt.Sprintf("https://%s", shopDomain)
	}
	return fmt.Sprintf("%s/admin/api/%s/%s", strings.TrimRight(base, "/"), c.apiVersion, path)
}
