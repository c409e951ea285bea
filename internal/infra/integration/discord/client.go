package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	webhookURL string
	http       *http.Client
}

func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

// Send publica uma mensagem no canal do webhook. O Discord responde 204
// quando aceita o payload.
func (c *Client) Send(content string, embed *Embed) error {
	if c.webhookURL == "" {
		return fmt.Errorf("discord webhook não configurado")
	}

	payload := webhookPayload{Content: content}
	if embed != nil {
		e := *embed
		if e.Title == "" {
			e.Title = "CRM Notification"
		}
		if e.Color == 0 {
			e.Color = ColorDefault
		}
		e.Timestamp = time.Now().UTC().Format(time.RFC3339)
		payload.Embeds = []Embed{e}
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao marshal payload discord: %w", err)
	}

	req, err := http.NewRequest("POST", c.webhookURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro request discord: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("discord rejeitou (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}
