package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: "https://api.stripe.com/v1",
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// CreatePaymentLink cria um payment link com o valor do deal e os IDs no
// metadata (o webhook de pagamento devolve esses IDs depois).
func (c *Client) CreatePaymentLink(ctx context.Context, input PaymentLinkInput) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("stripe não configurado")
	}

	// 1. Converte DTO -> form da API do Stripe
	form := url.Values{}
	form.Set("line_items[0][price_data][currency]", "usd")
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(int64(input.Amount*100), 10))
	form.Set("line_items[0][price_data][product_data][name]", fmt.Sprintf("Service for %s", input.CompanyName))
	form.Set("line_items[0][quantity]", "1")
	form.Set("metadata[deal_id]", strconv.FormatInt(input.DealID, 10))
	form.Set("metadata[lead_id]", strconv.FormatInt(input.LeadID, 10))

	// 2. Cria Request
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/payment_links", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Idempotency-Key", uuid.New().String())

	// 3. Envia
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro request stripe: %w", err)
	}
	defer resp.Body.Close()

	// 4. Trata Erro
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("stripe rejeitou (status %d): %s", resp.StatusCode, string(body))
	}

	// 5. Decodifica
	var response paymentLinkResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("erro decode stripe: %w", err)
	}

	return response.URL, nil
}
