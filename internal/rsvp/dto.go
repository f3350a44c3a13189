package rsvp

type SubmitRSVPDTO struct {
	EventID string `json:"event_id"`
	Name    string `json:"attendee_name"`
	Email   string `json:"attendee_email"`
	Phone   string `json:"attendee_phone"`
}
