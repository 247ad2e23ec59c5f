package models

type CheckoutStage string

const (
	StageInitial      CheckoutStage = "initial"
	StageAddress      CheckoutStage = "address"
	StagePayment      CheckoutStage = "payment"
	StageConfirmation CheckoutStage = "confirmation"
	StageComplete     CheckoutStage = "complete"
)

type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "credit-card"
	PaymentCashOnDelivery PaymentMethod = "cash-on-delivery"
	PaymentPaypal         PaymentMethod = "paypal"
)

// Label returns the human-readable payment method name used in chat replies.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCreditCard:
		return "Credit Card"
	case PaymentPaypal:
		return "PayPal"
	default:
		return "Cash on Delivery"
	}
}

// Address is the comma-separated delivery address parsed during checkout.
// Zip and Phone may be empty when the user omits them.
type Address struct {
	Name   string `json:"name"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
	Phone  string `json:"phone"`
}

// CheckoutState is the working memory of the checkout dialogue engine.
// OrderID and DeliveryDate are set if and only if Stage == StageComplete.
// SpecificProduct, when set, substitutes for the cart throughout the flow.
type CheckoutState struct {
	Stage           CheckoutStage `json:"stage"`
	Address         *Address      `json:"address,omitempty"`
	PaymentMethod   PaymentMethod `json:"paymentMethod,omitempty"`
	OrderID         string        `json:"orderId,omitempty"`
	DeliveryDate    string        `json:"deliveryDate,omitempty"`
	SpecificProduct *Product      `json:"specificProduct,omitempty"`
}
