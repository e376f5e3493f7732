package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	pkgerrors "github.com/c-e-daly/prophet-sub001/pkg/errors"
)

func TestCreateDiscountHappyPath(t *testing.T) {
	var capturedURLs []string
	var capturedHeaders http.Header
	var priceRuleBody map[string]any

	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		capturedURLs = append(capturedURLs, req.URL.String())
		capturedHeaders = req.Header.Clone()

		switch {
		case strings.HasSuffix(req.URL.Path, "/price_rules.json"):
			bodyBytes, err := io.ReadAll(req.Body)
			if err != nil {
				t.Fatalf("read request body: %v", err)
			}
			if err := json.Unmarshal(bodyBytes, &priceRuleBody); err != nil {
				t.Fatalf("unmarshal request body: %v", err)
			}
			return jsonResponse(http.StatusCreated, `{"price_rule":{"id":990001}}`), nil
		case strings.HasSuffix(req.URL.Path, "/price_rules/990001/discount_codes.json"):
			return jsonResponse(http.StatusCreated, `{"discount_code":{"id":5577,"code":"PROPHET-AB12"}}`), nil
		default:
			t.Fatalf("unexpected request path %q", req.URL.Path)
			return nil, nil
		}
	})

	client, err := NewClient("shpat_test", WithBaseURL("http://shop.test"), WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	result, err := client.CreateDiscount(context.Background(), "demo.myshopify.com", DiscountRequest{
		Title:           "Accepted offer PROPHET-AB12",
		Code:            "PROPHET-AB12",
		ValueCents:      2000,
		OncePerCustomer: true,
		CombinesWith:    []string{"shipping"},
		StartsAt:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create discount: %v", err)
	}

	if len(capturedURLs) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(capturedURLs))
	}
	if capturedURLs[0] != "http://shop.test/admin/api/2024-10/price_rules.json" {
		t.Fatalf("unexpected URL %q", capturedURLs[0])
	}
	if capturedHeaders.Get("X-Shopify-Access-Token") != "shpat_test" {
		t.Fatal("access token header missing")
	}

	rule, ok := priceRuleBody["price_rule"].(map[string]any)
	if !ok {
		t.Fatalf("price_rule missing from payload %v", priceRuleBody)
	}
	if rule["value_type"] != "fixed_amount" || rule["value"] != "-20.00" {
		t.Fatalf("unexpected value fields %v/%v", rule["value_type"], rule["value"])
	}
	if rule["once_per_customer"] != true {
		t.Fatal("once_per_customer not set")
	}

	if result.PriceRuleID != 990001 || result.DiscountID != 5577 || result.Code != "PROPHET-AB12" {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(result.Raw) == 0 {
		t.Fatal("raw response missing")
	}
}

func TestCreateDiscountPercentValue(t *testing.T) {
	var rule map[string]any
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if strings.HasSuffix(req.URL.Path, "/price_rules.json") {
			var payload map[string]map[string]any
			if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
				t.Fatalf("decode payload: %v", err)
			}
			rule = payload["price_rule"]
			return jsonResponse(http.StatusCreated, `{"price_rule":{"id":12}}`), nil
		}
		return jsonResponse(http.StatusCreated, `{"discount_code":{"id":34,"code":"PCT-15"}}`), nil
	})

	client, err := NewClient("shpat_test", WithBaseURL("http://shop.test"), WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.CreateDiscount(context.Background(), "demo.myshopify.com", DiscountRequest{
		Code:         "PCT-15",
		ValuePercent: 15,
		StartsAt:     time.Now(),
	}); err != nil {
		t.Fatalf("create discount: %v", err)
	}

	if rule["value_type"] != "percentage" || rule["value"] != "-15.0" {
		t.Fatalf("unexpected value fields %v/%v", rule["value_type"], rule["value"])
	}
}

func TestCreateDiscountValidationRejection(t *testing.T) {
	respBody := `{"errors":{"price_rule":["value must be negative"]}}`
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnprocessableEntity, respBody), nil
	})

	client, err := NewClient("shpat_test", WithBaseURL("http://shop.test"), WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	result, err := client.CreateDiscount(context.Background(), "demo.myshopify.com", DiscountRequest{
		Code:       "BAD",
		ValueCents: 100,
		StartsAt:   time.Now(),
	})
	if err == nil {
		t.Fatal("expected platform error")
	}

	coded := pkgerrors.As(err)
	if coded == nil || coded.Code() != pkgerrors.CodePlatform {
		t.Fatalf("expected platform code, got %v", err)
	}
	// The raw rejection must still come back for persistence.
	if result == nil || string(result.Raw) != respBody {
		t.Fatalf("raw rejection not preserved: %+v", result)
	}

	var validation ValidationErrors
	if !errors.As(err, &validation) {
		t.Fatalf("validation errors not wrapped: %v", err)
	}
	if len(validation["price_rule"]) != 1 {
		t.Fatalf("unexpected validation payload %v", validation)
	}
}

func TestCreateDiscountServerError(t *testing.T) {
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, `{"errors":"upstream unavailable"}`), nil
	})

	client, err := NewClient("shpat_test", WithBaseURL("http://shop.test"), WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	result, err := client.CreateDiscount(context.Background(), "demo.myshopify.com", DiscountRequest{
		Code:       "ERR",
		ValueCents: 100,
		StartsAt:   time.Now(),
	})
	if err == nil {
		t.Fatal("expected platform error")
	}
	if result == nil || len(result.Raw) == 0 {
		t.Fatal("raw failure body not preserved")
	}
}

func TestCreateDiscountInputValidation(t *testing.T) {
	client, err := NewClient("shpat_test")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	cases := []struct {
		name string
		shop string
		req  DiscountRequest
	}{
		{"missing shop", "", DiscountRequest{Code: "X", ValueCents: 100}},
		{"missing code", "demo.myshopify.com", DiscountRequest{ValueCents: 100}},
		{"missing value", "demo.myshopify.com", DiscountRequest{Code: "X"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := client.CreateDiscount(context.Background(), tc.shop, tc.req)
			coded := pkgerrors.As(err)
			if coded == nil || coded.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestNewClientRequiresToken(t *testing.T) {
	if _, err := NewClient("   "); err == nil {
		t.Fatal("expected error for blank token")
	}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{},
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
