package slack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Notifier posts attendance submissions to a Slack incoming webhook.
type Notifier interface {
	SendAttendanceNotification(userName, date, startTime, endTime string, breakMinutes int, report string) error
}

type webhookNotifier struct {
	webhookURL string
	httpClient *http.Client
}

func NewNotifier(webhookURL string) Notifier {
	return &webhookNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type message struct {
	Text        string       `json:"text"`
	Attachments []attachment `json:"attachments,omitempty"`
}

type attachment struct {
	Color  string  `json:"color"`
	Fields []field `json:"fields"`
}

type field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

func (n *webhookNotifier) SendAttendanceNotification(userName, date, startTime, endTime string, breakMinutes int, report string) error {
	if n.webhookURL == "" {
		return fmt.Errorf("slack webhook URL is not configured")
	}

	msg := message{
		Text: fmt.Sprintf("New attendance entry from %s", userName),
		Attachments: []attachment{
			{
				Color: "#36a64f",
				Fields: []field{
					{Title: "Date", Value: date, Short: true},
					{Title: "Hours", Value: fmt.Sprintf("%s - %s", startTime, endTime), Short: true},
					{Title: "Break", Value: fmt.Sprintf("%d min", breakMinutes), Short: true},
					{Title: "Report", Value: report, Short: false},
				},
			},
		},
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal slack message: %w", err)
	}

	resp, err := n.httpClient.Post(n.webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("post slack webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack webhook returned status %d", resp.StatusCode)
	}
	return nil
}
