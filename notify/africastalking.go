package notify

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// AfricasTalkingGateway sends SMS through the Africa's Talking bulk
// messaging API.
type AfricasTalkingGateway struct {
	apiKey   string
	username string
	apiURL   string
	senderID string
	client   *http.Client
}

type atSendResponse struct {
	SMSMessageData struct {
		Message    string `json:"Message"`
		Recipients []struct {
			Number     string `json:"number"`
			Status     string `json:"status"`
			StatusCode int    `json:"statusCode"`
		} `json:"Recipients"`
	} `json:"SMSMessageData"`
}

func NewAfricasTalkingGateway(apiKey, username, apiURL, senderID string) (*AfricasTalkingGateway, error) {
	if apiKey == "" || username == "" || apiURL == "" {
		return nil, fmt.Errorf("africa's talking configuration missing")
	}
	return &AfricasTalkingGateway{
		apiKey:   apiKey,
		username: username,
		apiURL:   apiURL,
		senderID: senderID,
		client:   &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func (g *AfricasTalkingGateway) Send(recipients []string, message string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("no recipients")
	}

	form := url.Values{}
	form.Set("username", g.username)
	form.Set("to", strings.Join(recipients, ","))
	form.Set("message", message)
	if g.senderID != "" {
		form.Set("from", g.senderID)
	}

	req, err := http.NewRequest("POST", g.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apiKey", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach SMS provider: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("sms API error (%d): %s", resp.StatusCode, string(body))
	}

	var atResp atSendResponse
	if err := json.Unmarshal(body, &atResp); err != nil {
		return fmt.Errorf("failed to parse SMS response: %w", err)
	}

	// The provider reports per-recipient outcomes; anything other than
	// "Success" means the message was not accepted for that number.
	for _, r := range atResp.SMSMessageData.Recipients {
		if r.Status != "Success" {
			return fmt.Errorf("sms rejected for %s: %s (code %d)", r.Number, r.Status, r.StatusCode)
		}
	}
	if len(atResp.SMSMessageData.Recipients) == 0 {
		return fmt.Errorf("sms not accepted: %s", atResp.SMSMessageData.Message)
	}
	return nil
}
