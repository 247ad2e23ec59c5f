package checkout

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/models"
)

var (
	testNow      = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	testClock    = func() time.Time { return testNow }
	testRand     = func(n int) int { return 7 }
	testCart     = []models.Product{{ID: "p1", Name: "Wireless Headphones", Description: "Premium headphones", Price: 149.99}}
	orderIDRe    = regexp.MustCompile(`^ORD-7-\d{4}$`)
	fullAddress  = "Jane Doe, 12 Oak St, Springfield, IL, 62701, 5551234567"
	wantDelivery = "Friday, March 13, 2026"
)

func newTestEngine() *Engine {
	return NewEngine(testClock, testRand)
}

// runTo drives a fresh state up to the given stage using valid inputs.
func runTo(t *testing.T, e *Engine, stage models.CheckoutStage) *models.CheckoutState {
	t.Helper()
	state := &models.CheckoutState{Stage: models.StageInitial}
	steps := []string{"", fullAddress, "credit card"}
	targets := []models.CheckoutStage{models.StageAddress, models.StagePayment, models.StageConfirmation}
	for i, input := range steps {
		if state.Stage == stage {
			return state
		}
		e.Advance(state, testCart, input)
		require.Equal(t, targets[i], state.Stage)
	}
	require.Equal(t, stage, state.Stage)
	return state
}

func TestAdvanceEmptyCartResets(t *testing.T) {
	e := newTestEngine()
	state := &models.CheckoutState{Stage: models.StageAddress}

	res := e.Advance(state, nil, "whatever")
	require.Len(t, res.Replies, 1)
	assert.Equal(t, "Your cart is empty. Please add products before checkout.", res.Replies[0].Text)
	assert.Equal(t, models.StageInitial, state.Stage)
}

func TestAdvanceInitialAsksForAddress(t *testing.T) {
	e := newTestEngine()
	state := &models.CheckoutState{Stage: models.StageInitial}

	res := e.Advance(state, testCart, "")
	require.Len(t, res.Replies, 1)
	assert.Contains(t, res.Replies[0].Text, "Name, Street Address, City, State, ZIP, Phone Number")
	assert.Equal(t, models.StageAddress, state.Stage)
}

func TestAdvanceAddress(t *testing.T) {
	e := newTestEngine()

	t.Run("too few parts re-prompts", func(t *testing.T) {
		state := runTo(t, e, models.StageAddress)
		res := e.Advance(state, testCart, "Jane Doe, 12 Oak St, Springfield")
		require.Len(t, res.Replies, 1)
		assert.Contains(t, res.Replies[0].Text, "complete address")
		assert.Equal(t, models.StageAddress, state.Stage)
		assert.Nil(t, state.Address)
	})

	t.Run("four parts accepted with empty zip and phone", func(t *testing.T) {
		state := runTo(t, e, models.StageAddress)
		res := e.Advance(state, testCart, "Jane Doe, 12 Oak St, Springfield, IL")
		require.Len(t, res.Replies, 1)
		assert.Equal(t, models.StagePayment, state.Stage)
		require.NotNil(t, state.Address)
		assert.Equal(t, "", state.Address.Zip)
		assert.Equal(t, "", state.Address.Phone)
	})

	t.Run("six parts captured in order", func(t *testing.T) {
		state := runTo(t, e, models.StageAddress)
		res := e.Advance(state, testCart, fullAddress)
		require.Len(t, res.Replies, 1)
		assert.Contains(t, res.Replies[0].Text, "Please select your payment method")
		assert.Equal(t, models.StagePayment, state.Stage)
		require.NotNil(t, state.Address)
		assert.Equal(t, models.Address{
			Name:   "Jane Doe",
			Street: "12 Oak St",
			City:   "Springfield",
			State:  "IL",
			Zip:    "62701",
			Phone:  "5551234567",
		}, *state.Address)
	})

	t.Run("blank input is ignored", func(t *testing.T) {
		state := runTo(t, e, models.StageAddress)
		res := e.Advance(state, testCart, "   ")
		assert.Empty(t, res.Replies)
		assert.Equal(t, models.StageAddress, state.Stage)
	})
}

func TestAdvancePayment(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		input string
		want  models.PaymentMethod
	}{
		{"I'll pay by Card", models.PaymentCreditCard},
		{"credit please", models.PaymentCreditCard},
		{"COD please", models.PaymentCashOnDelivery},
		{"cash on delivery", models.PaymentCashOnDelivery},
		{"paypal", models.PaymentPaypal},
		{"pay pal works", models.PaymentPaypal},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			state := runTo(t, e, models.StagePayment)
			res := e.Advance(state, testCart, tt.input)
			require.Len(t, res.Replies, 1)
			assert.Contains(t, res.Replies[0].Text, "Please confirm your order")
			assert.Equal(t, models.StageConfirmation, state.Stage)
			assert.Equal(t, tt.want, state.PaymentMethod)
		})
	}

	t.Run("unknown method re-prompts", func(t *testing.T) {
		state := runTo(t, e, models.StagePayment)
		res := e.Advance(state, testCart, "bitcoin")
		require.Len(t, res.Replies, 1)
		assert.Equal(t, "Please select a valid payment method: Credit Card, PayPal, or Cash on Delivery", res.Replies[0].Text)
		assert.Equal(t, models.StagePayment, state.Stage)
	})
}

func TestAdvanceConfirmation(t *testing.T) {
	e := newTestEngine()

	t.Run("edit returns to address keeping data", func(t *testing.T) {
		state := runTo(t, e, models.StageConfirmation)
		res := e.Advance(state, testCart, "edit")
		require.Len(t, res.Replies, 1)
		assert.Equal(t, "Let's start over. Please provide your delivery address.", res.Replies[0].Text)
		assert.Equal(t, models.StageAddress, state.Stage)
		assert.NotNil(t, state.Address)
		assert.Equal(t, models.PaymentCreditCard, state.PaymentMethod)
	})

	t.Run("unrecognized input re-prompts", func(t *testing.T) {
		state := runTo(t, e, models.StageConfirmation)
		res := e.Advance(state, testCart, "maybe later")
		require.Len(t, res.Replies, 1)
		assert.Equal(t, `Please type "confirm" to place your order, or "edit" to make changes.`, res.Replies[0].Text)
		assert.Equal(t, models.StageConfirmation, state.Stage)
	})

	t.Run("confirm completes the order", func(t *testing.T) {
		state := runTo(t, e, models.StageConfirmation)
		res := e.Advance(state, testCart, "confirm")

		assert.Equal(t, models.StageComplete, state.Stage)
		assert.Regexp(t, orderIDRe, state.OrderID)
		assert.Equal(t, wantDelivery, state.DeliveryDate)

		require.Len(t, res.Replies, 1)
		assert.Contains(t, res.Replies[0].Text, "Your order has been successfully placed!")
		assert.Contains(t, res.Replies[0].Text, state.OrderID)
		assert.Contains(t, res.Replies[0].Text, wantDelivery)
		assert.True(t, res.Replies[0].System)
		assert.Equal(t, testCart, res.Replies[0].Products)

		assert.True(t, res.ClearCart)
		assert.Equal(t, ResetDelay, res.ResetAfter)

		require.NotNil(t, res.Order)
		assert.Equal(t, state.OrderID, res.Order.ID)
		assert.Equal(t, 149.99, res.Order.TotalAmount)
		assert.Equal(t, models.PaymentCreditCard, res.Order.PaymentMethod)
		assert.Equal(t, wantDelivery, res.Order.DeliveryDate)
		assert.Equal(t, testNow, res.Order.CreatedAt)
		require.Len(t, res.Order.Items, 1)
		assert.Equal(t, "p1", res.Order.Items[0].ProductID)
	})

	t.Run("yes also confirms", func(t *testing.T) {
		state := runTo(t, e, models.StageConfirmation)
		res := e.Advance(state, testCart, "yes please")
		assert.Equal(t, models.StageComplete, state.Stage)
		require.NotNil(t, res.Order)
	})
}

func TestAdvanceSpecificProductOverridesCart(t *testing.T) {
	e := newTestEngine()
	watch := models.Product{ID: "p2", Name: "Smart Watch", Price: 199.99}

	state := &models.CheckoutState{Stage: models.StageInitial, SpecificProduct: &watch}
	sharedCart := testCart

	e.Advance(state, sharedCart, "")
	e.Advance(state, sharedCart, fullAddress)
	res := e.Advance(state, sharedCart, "paypal")
	require.Len(t, res.Replies, 1)
	assert.Contains(t, res.Replies[0].Text, "Smart Watch")
	assert.NotContains(t, res.Replies[0].Text, "Wireless Headphones")

	res = e.Advance(state, sharedCart, "confirm")
	require.NotNil(t, res.Order)
	assert.Equal(t, 199.99, res.Order.TotalAmount)

	// The shared cart was not consumed.
	assert.False(t, res.ClearCart)
}

func TestAdvanceSpecificProductWithEmptySharedCart(t *testing.T) {
	e := newTestEngine()
	watch := models.Product{ID: "p2", Name: "Smart Watch", Price: 199.99}
	state := &models.CheckoutState{Stage: models.StageInitial, SpecificProduct: &watch}

	res := e.Advance(state, nil, "")
	require.Len(t, res.Replies, 1)
	assert.Equal(t, models.StageAddress, state.Stage)
}

func TestAdvanceCompleteStageResets(t *testing.T) {
	e := newTestEngine()
	state := &models.CheckoutState{Stage: models.StageComplete, OrderID: "ORD-7-0001"}

	res := e.Advance(state, testCart, "anything")
	assert.Empty(t, res.Replies)
	assert.Equal(t, models.CheckoutState{Stage: models.StageInitial}, *state)
}
