package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Gunvolt24/intershop/internal/ports"
)

// Проверка, что Client удовлетворяет интерфейсу PaymentClient.
var _ ports.PaymentClient = (*Client)(nil)

// Client — HTTP-клиент платёжного сервиса. Результат платежа булев:
// сервис либо списал деньги, либо отказал; детализация отказа не
// передаётся и оформлению заказа не нужна.
type Client struct {
	baseURL string
	http    *http.Client
	log     ports.Logger
}

// NewClient — конструктор. timeout <= 0 откатывается к 5 секундам.
func NewClient(baseURL string, timeout time.Duration, log ports.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type processRequest struct {
	UserID int64   `json:"user_id"`
	Amount float64 `json:"amount"`
}

type processResponse struct {
	Success bool `json:"success"`
}

// Process — POST /payments/process. true — платёж проведён, false — отказ.
// Ошибка возвращается только при недоступности сервиса или кривом ответе.
func (c *Client) Process(ctx context.Context, userID int64, amount float64) (bool, error) {
	body, err := json.Marshal(processRequest{UserID: userID, Amount: amount})
	if err != nil {
		return false, fmt.Errorf("marshal payment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments/process", bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("build payment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("payment service: %w", err)
	}
	defer resp.Body.Close()

	// 402 — штатный отказ, остальные не-2xx — ошибка сервиса
	if resp.StatusCode == http.StatusPaymentRequired {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, fmt.Errorf("payment service: unexpected status %d", resp.StatusCode)
	}

	var out processResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("decode payment response: %w", err)
	}

	c.log.Infof(ctx, "payment processed user=%d amount=%.2f success=%v", userID, amount, out.Success)
	return out.Success, nil
}
