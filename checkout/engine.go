package checkout

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/models"
)

// ResetDelay is how long a completed checkout stays visible before the state
// machine returns to initial.
const ResetDelay = 5 * time.Second

type Clock func() time.Time
type RandInt func(n int) int

// Reply is one assistant message produced by a checkout turn.
type Reply struct {
	Text     string
	Products []models.Product
	System   bool
}

// Result carries the replies of one checkout turn plus its side effects. The
// orchestrator owns the cart and the timers, so cart clearing and the
// deferred reset are surfaced as flags instead of performed here.
type Result struct {
	Replies    []Reply
	ClearCart  bool          // shared cart was consumed by a completed order
	Order      *models.Order // set when the order completed this turn
	ResetAfter time.Duration // when >0, reset state to initial after this delay
}

// Engine drives the multi-turn checkout dialogue. It mutates the passed
// CheckoutState in place and is otherwise pure: time and randomness are
// injected so transitions are fully deterministic under test.
type Engine struct {
	clock   Clock
	randInt RandInt
}

func NewEngine(clock Clock, randInt RandInt) *Engine {
	if clock == nil {
		clock = time.Now
	}
	if randInt == nil {
		randInt = rand.Intn
	}
	return &Engine{clock: clock, randInt: randInt}
}

// Advance runs one checkout turn. Invalid input never fails: it produces a
// corrective reply and leaves the stage unchanged, giving the user unlimited
// retries. Nothing is stored until its validation succeeds.
func (e *Engine) Advance(state *models.CheckoutState, cart []models.Product, input string) Result {
	// A specific product overrides the shared cart for the whole flow.
	effective := cart
	if state.SpecificProduct != nil {
		effective = []models.Product{*state.SpecificProduct}
	}

	if len(effective) == 0 {
		*state = models.CheckoutState{Stage: models.StageInitial}
		return reply("Your cart is empty. Please add products before checkout.")
	}

	switch state.Stage {
	case models.StageInitial:
		state.Stage = models.StageAddress
		return reply("To proceed with your order, please provide your delivery address in the format: Name, Street Address, City, State, ZIP, Phone Number")

	case models.StageAddress:
		return e.advanceAddress(state, input)

	case models.StagePayment:
		return e.advancePayment(state, effective, input)

	case models.StageConfirmation:
		return e.advanceConfirmation(state, effective, input)

	default:
		// Covers complete (until the deferred reset fires) and any
		// unrecognized stage value.
		*state = models.CheckoutState{Stage: models.StageInitial}
		return Result{}
	}
}

func (e *Engine) advanceAddress(state *models.CheckoutState, input string) Result {
	if strings.TrimSpace(input) == "" {
		return Result{}
	}

	parts := strings.Split(input, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 4 {
		return reply("Please provide your complete address with name, street, city, state, ZIP code, and phone number separated by commas.")
	}

	addr := models.Address{Name: parts[0], Street: parts[1], City: parts[2], State: parts[3]}
	if len(parts) > 4 {
		addr.Zip = parts[4]
	}
	if len(parts) > 5 {
		addr.Phone = parts[5]
	}

	state.Address = &addr
	state.Stage = models.StagePayment
	return reply(fmt.Sprintf(
		"Thank you! Your delivery address has been set to:\n\n%s\n%s\n%s, %s %s\nPhone: %s\n\nPlease select your payment method: Credit Card, PayPal, or Cash on Delivery",
		addr.Name, addr.Street, addr.City, addr.State, addr.Zip, addr.Phone))
}

func (e *Engine) advancePayment(state *models.CheckoutState, effective []models.Product, input string) Result {
	if strings.TrimSpace(input) == "" {
		return Result{}
	}

	lower := strings.ToLower(input)
	var method models.PaymentMethod
	switch {
	case strings.Contains(lower, "credit") || strings.Contains(lower, "card"):
		method = models.PaymentCreditCard
	case strings.Contains(lower, "cash") || strings.Contains(lower, "delivery") || strings.Contains(lower, "cod"):
		method = models.PaymentCashOnDelivery
	case strings.Contains(lower, "paypal") || strings.Contains(lower, "pay pal"):
		method = models.PaymentPaypal
	default:
		return reply("Please select a valid payment method: Credit Card, PayPal, or Cash on Delivery")
	}

	state.PaymentMethod = method
	state.Stage = models.StageConfirmation

	var lines []string
	for _, item := range effective {
		lines = append(lines, fmt.Sprintf("- %s: $%.2f", item.Name, item.Price))
	}
	addr := state.Address

	return reply(fmt.Sprintf(
		"Please confirm your order:\n\n%d item%s in your cart:\n%s\n\nTotal: $%.2f\n\nDelivery Address:\n%s\n%s\n%s, %s %s\nPhone: %s\n\nPayment Method: %s\n\nType \"confirm\" to place your order, or \"edit\" to make changes.",
		len(effective), plural(len(effective)), strings.Join(lines, "\n"), total(effective),
		addr.Name, addr.Street, addr.City, addr.State, addr.Zip, addr.Phone, method.Label()))
}

func (e *Engine) advanceConfirmation(state *models.CheckoutState, effective []models.Product, input string) Result {
	if strings.TrimSpace(input) == "" {
		return Result{}
	}

	lower := strings.ToLower(input)
	if strings.Contains(lower, "edit") || strings.Contains(lower, "change") || strings.Contains(lower, "modify") {
		// Back to the address step; payment method and address are retained.
		state.Stage = models.StageAddress
		return reply("Let's start over. Please provide your delivery address.")
	}

	if !strings.Contains(lower, "confirm") && !strings.Contains(lower, "yes") && !strings.Contains(lower, "ok") {
		return reply("Please type \"confirm\" to place your order, or \"edit\" to make changes.")
	}

	now := e.clock()
	ts := strconv.FormatInt(now.UnixMilli(), 10)
	orderID := fmt.Sprintf("ORD-%d-%s", e.randInt(10000), ts[len(ts)-4:])
	deliveryDate := now.AddDate(0, 0, 3).Format("Monday, January 2, 2006")

	state.Stage = models.StageComplete
	state.OrderID = orderID
	state.DeliveryDate = deliveryDate

	var lines []string
	items := make([]models.OrderItem, 0, len(effective))
	for _, p := range effective {
		lines = append(lines, fmt.Sprintf("- %s (ID: %s): $%.2f\n  %s", p.Name, p.ID, p.Price, p.Description))
		items = append(items, models.OrderItem{ProductID: p.ID, ProductName: p.Name, Price: p.Price})
	}
	addr := state.Address

	text := fmt.Sprintf(
		"🎉 Your order has been successfully placed! 🎉\n\nOrder ID: %s\n\nOrder Details:\n%s\n\nTotal: $%.2f\n\nDelivery Address:\n%s\n%s\n%s, %s %s\nPhone: %s\n\nPayment Method: %s\n\nExpected Delivery: %s\n\nThank you for shopping with us!",
		orderID, strings.Join(lines, "\n\n"), total(effective),
		addr.Name, addr.Street, addr.City, addr.State, addr.Zip, addr.Phone,
		state.PaymentMethod.Label(), deliveryDate)

	order := &models.Order{
		ID:            orderID,
		Items:         items,
		TotalAmount:   total(effective),
		PaymentMethod: state.PaymentMethod,
		Address:       *addr,
		DeliveryDate:  deliveryDate,
		CreatedAt:     now,
	}

	return Result{
		Replies:    []Reply{{Text: text, Products: effective, System: true}},
		ClearCart:  state.SpecificProduct == nil,
		Order:      order,
		ResetAfter: ResetDelay,
	}
}

func reply(text string) Result {
	return Result{Replies: []Reply{{Text: text}}}
}

func total(products []models.Product) float64 {
	var sum float64
	for _, p := range products {
		sum += p.Price
	}
	return sum
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
