package paymentControllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// PaymentIntent is the subset of the provider response we use.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type providerError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// getStripeConfig reads the provider credentials at call time, like the rest
// of the service's env configuration.
func getStripeConfig() (secretKey, apiURL string, err error) {
	secretKey = os.Getenv("STRIPE_SECRET_KEY")
	apiURL = os.Getenv("STRIPE_API_URL")
	if apiURL == "" {
		apiURL = "https://api.stripe.com"
	}
	if secretKey == "" {
		return "", "", fmt.Errorf("stripe configuration missing")
	}
	return secretKey, apiURL, nil
}

// postForm sends one form-encoded call to the provider and decodes the
// response into out. Provider error messages are surfaced to the caller;
// they are customer-safe by the provider's own contract.
func postForm(path string, form url.Values, out interface{}) error {
	secretKey, apiURL, err := getStripeConfig()
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", apiURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+secretKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach payment provider: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		var perr providerError
		if json.Unmarshal(body, &perr) == nil && perr.Error.Message != "" {
			return fmt.Errorf("payment provider: %s", perr.Error.Message)
		}
		return fmt.Errorf("payment provider error (%d)", resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to parse provider response: %v", err)
		}
	}
	return nil
}

// CreatePaymentIntent opens a payment intent for an order. The amount is in
// minor units and was computed server-side; nothing client-supplied reaches
// the provider.
func CreatePaymentIntent(amount int64, currency, orderRef, email string) (PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", strings.ToLower(currency))
	form.Set("receipt_email", email)
	form.Set("metadata[order_ref]", orderRef)
	form.Set("automatic_payment_methods[enabled]", "true")

	var intent PaymentIntent
	if err := postForm("/v1/payment_intents", form, &intent); err != nil {
		return PaymentIntent{}, err
	}
	if intent.ClientSecret == "" {
		return PaymentIntent{}, fmt.Errorf("provider returned empty client secret")
	}
	return intent, nil
}

// RegisterPaymentDomain registers the storefront domain for the provider's
// wallet payment methods. One-shot operational call.
func RegisterPaymentDomain(domain string) error {
	form := url.Values{}
	form.Set("domain_name", domain)
	return postForm("/v1/payment_method_domains", form, nil)
}
