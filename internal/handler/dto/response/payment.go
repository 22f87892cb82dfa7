package response

type PaymentSessionResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
}

type PaymentStatusResponse struct {
	Paid bool `json:"paid"`
}

type WebhookAckResponse struct {
	Received bool `json:"received"`
}
