package ticket

import (
	"encoding/json"
	"strings"
)

// QuantityInput holds a quantity as typed by the user. Forms send it either as
// a JSON number or as a string; both are accepted and validated later.
type QuantityInput string

func (q *QuantityInput) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*q = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*q = QuantityInput(s)
		return nil
	}
	*q = QuantityInput(raw)
	return nil
}

type CreateTicketDTO struct {
	EventID       string        `json:"event_id"`
	BuyerName     string        `json:"buyer_name"`
	BuyerEmail    string        `json:"buyer_email"`
	Quantity      QuantityInput `json:"quantity"`
	TicketType    string        `json:"ticket_type"`
	PaymentStatus string        `json:"payment_status"`
}
