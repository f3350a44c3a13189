package budget

type ExpenseCategory string

var ExpenseCategories = []ExpenseCategory{
	"Venue",
	"Catering",
	"Travel/Transportation",
	"Entertainment",
	"Marketing/Promotion",
	"Decorations",
	"Gifts/Party Favors",
	"Speakers/Presenters",
	"Equipment Rental (e.g., Audio/Visual)",
	"Staff/Personnel",
	"Security",
	"Technology (e.g., Software, Platforms)",
	"Licensing/Permits",
	"Photography/Videography",
	"Printing/Materials",
	"Accommodation",
	"Insurance",
	"Miscellaneous",
}

func (c ExpenseCategory) IsValid() bool {
	for _, v := range ExpenseCategories {
		if c == v {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentCorporateAccount PaymentMethod = "Corporate Account"
	PaymentCreditCard       PaymentMethod = "Credit Card"
	PaymentPayPal           PaymentMethod = "PayPal"
	PaymentBankTransfer     PaymentMethod = "Bank Transfer"
	PaymentCash             PaymentMethod = "Cash"
)

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCorporateAccount, PaymentCreditCard, PaymentPayPal, PaymentBankTransfer, PaymentCash:
		return true
	}
	return false
}
