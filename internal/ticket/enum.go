package ticket

type TicketType string

const (
	TicketTypeRegular   TicketType = "Regular"
	TicketTypeVIP       TicketType = "VIP"
	TicketTypeEarlyBird TicketType = "Early Bird"
)

var AllTicketTypes = []TicketType{
	TicketTypeRegular,
	TicketTypeVIP,
	TicketTypeEarlyBird,
}

func (t TicketType) IsValid() bool {
	for _, v := range AllTicketTypes {
		if t == v {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
	PaymentUnpaid  PaymentStatus = "Unpaid"
	PaymentFailed  PaymentStatus = "Failed"
)

var AllPaymentStatuses = []PaymentStatus{
	PaymentPaid,
	PaymentPending,
	PaymentUnpaid,
	PaymentFailed,
}

func (s PaymentStatus) IsValid() bool {
	for _, v := range AllPaymentStatuses {
		if s == v {
			return true
		}
	}
	return false
}
