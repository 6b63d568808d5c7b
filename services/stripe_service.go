package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// StripeConfig holds payment-processor configuration
type StripeConfig struct {
	SecretKey string
	BaseURL   string
}

// StripeService handles payment-intent calls against the Stripe API
type StripeService struct {
	config     *StripeConfig
	httpClient *http.Client
}

var (
	stripeService *StripeService
	stripeOnce    sync.Once
)

const defaultStripeBaseURL = "https://api.stripe.com"

// GetStripeService returns the shared StripeService instance
func GetStripeService() *StripeService {
	stripeOnce.Do(func() {
		secretKey := os.Getenv("STRIPE_SECRET_KEY")
		baseURL := os.Getenv("STRIPE_BASE_URL")
		if baseURL == "" {
			baseURL = defaultStripeBaseURL
		}

		stripeService = NewStripeService(&StripeConfig{
			SecretKey: secretKey,
			BaseURL:   baseURL,
		})
	})
	return stripeService
}

// NewStripeService creates a StripeService with explicit config
func NewStripeService(config *StripeConfig) *StripeService {
	if config.BaseURL == "" {
		config.BaseURL = defaultStripeBaseURL
	}
	return &StripeService{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ValidateConfig validates payment-processor configuration
func (ss *StripeService) ValidateConfig() error {
	if ss.config.SecretKey == "" {
		return fmt.Errorf("STRIPE_SECRET_KEY is not set")
	}
	return nil
}

// PaymentIntent is the subset of the processor response the backend uses
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// CreatePaymentIntent creates a payment intent for an integer minor-unit
// amount. No retries: a failure surfaces straight to the caller.
func (ss *StripeService) CreatePaymentIntent(amount int64, currency string) (*PaymentIntent, error) {
	endpoint := fmt.Sprintf("%s/v1/payment_intents", ss.config.BaseURL)

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequest("POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+ss.config.SecretKey)

	resp, err := ss.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stripe API error: %s", string(body))
	}

	var intent PaymentIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("error unmarshaling response: %v", err)
	}

	return &intent, nil
}
