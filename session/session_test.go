package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/assistant"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/catalog"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/checkout"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/models"
)

const fullAddress = "Jane Doe, 12 Oak St, Springfield, IL, 62701, 5551234567"

// recordingScheduler captures deferred work so tests run it after the turn
// releases the session lock. Running it inline would deadlock.
type recordingScheduler struct {
	pending []func()
	delays  []time.Duration
}

func (r *recordingScheduler) schedule(d time.Duration, fn func()) {
	r.pending = append(r.pending, fn)
	r.delays = append(r.delays, d)
}

func (r *recordingScheduler) runPending() {
	fns := r.pending
	r.pending = nil
	r.delays = nil
	for _, fn := range fns {
		fn()
	}
}

func newTestManager(t *testing.T) (*Manager, *recordingScheduler) {
	t.Helper()
	store := catalog.NewStore(catalog.SeedCategories(), catalog.SeedProducts())
	clock := func() time.Time { return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC) }
	sched := &recordingScheduler{}
	m := NewManager(Deps{
		Store:      store,
		Classifier: assistant.NewClassifier(store),
		Responder:  assistant.NewResponder(store, func(n int) int { return 0 }),
		Engine:     checkout.NewEngine(clock, func(n int) int { return 7 }),
		Clock:      clock,
		Schedule:   sched.schedule,
	})
	return m, sched
}

func TestNewSessionGreets(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Get("u1")

	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, models.SenderAssistant, msgs[0].Sender)
	assert.Equal(t, "Hello! How can I help you with your shopping today?", msgs[0].Text)
	assert.NotEmpty(t, msgs[0].ID)
	assert.NotEmpty(t, s.ID)
}

func TestManagerReusesAndResetsSessions(t *testing.T) {
	m, _ := newTestManager(t)

	s1 := m.Get("u1")
	assert.Same(t, s1, m.Get("u1"))
	assert.NotSame(t, s1, m.Get("u2"))

	s2 := m.Reset("u1")
	assert.NotSame(t, s1, s2)
	assert.Same(t, s2, m.Get("u1"))
}

func TestHandleTurnEmptyInputIsNoOp(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Get("u1")

	res, err := s.HandleTurn("   ")
	require.NoError(t, err)
	assert.Empty(t, res.Messages)
	assert.Len(t, s.Messages(), 1) // greeting only
}

func TestHandleTurnBusySession(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Get("u1")

	s.mu.Lock()
	_, err := s.HandleTurn("hello")
	s.mu.Unlock()
	assert.ErrorIs(t, err, ErrSessionBusy)
}

func TestHandleTurnAddToCartByName(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Get("u1")

	res, err := s.HandleTurn("add wireless headphones to my cart")
	require.NoError(t, err)
	require.Len(t, res.Messages, 2)
	assert.Equal(t, models.SenderUser, res.Messages[0].Sender)
	assert.Equal(t, "I've added the Wireless Headphones to your cart.", res.Messages[1].Text)
	require.Len(t, res.Messages[1].Products, 1)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "p1", cart[0].ID)
}

func TestHandleTurnClassifiedReply(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Get("u1")

	res, err := s.HandleTurn("find headphones")
	require.NoError(t, err)
	require.Len(t, res.Messages, 2)
	assert.Contains(t, res.Messages[1].Text, "matching \"headphones\"")
	assert.NotEmpty(t, res.Messages[1].Products)
}

func TestHandleTurnCartSummary(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Get("u1")

	_, err := s.HandleTurn("add wireless headphones to cart")
	require.NoError(t, err)

	res, err := s.HandleTurn("view cart")
	require.NoError(t, err)
	require.Len(t, res.Messages, 2)
	assert.Equal(t, "Your shopping cart has 1 item with a total of $149.99.", res.Messages[1].Text)
}

func TestFullCheckoutConversation(t *testing.T) {
	m, sched := newTestManager(t)
	s := m.Get("u1")

	_, err := s.HandleTurn("add wireless headphones to cart")
	require.NoError(t, err)

	res, err := s.HandleTurn("checkout")
	require.NoError(t, err)
	require.Len(t, res.Messages, 2)
	assert.Contains(t, res.Messages[1].Text, "please provide your delivery address")
	assert.Equal(t, models.StageAddress, s.Checkout().Stage)

	res, err = s.HandleTurn(fullAddress)
	require.NoError(t, err)
	assert.Contains(t, res.Messages[1].Text, "Please select your payment method")
	assert.Equal(t, models.StagePayment, s.Checkout().Stage)

	res, err = s.HandleTurn("credit card")
	require.NoError(t, err)
	assert.Contains(t, res.Messages[1].Text, "Please confirm your order")
	assert.Contains(t, res.Messages[1].Text, "$149.99")

	res, err = s.HandleTurn("confirm")
	require.NoError(t, err)
	require.Len(t, res.Messages, 2)
	assert.Contains(t, res.Messages[1].Text, "Your order has been successfully placed!")
	assert.True(t, res.Messages[1].System)

	require.NotNil(t, res.Order)
	assert.Equal(t, "u1", res.Order.UserID)
	assert.Equal(t, 149.99, res.Order.TotalAmount)

	// Cart is consumed, state lingers on complete until the deferred reset.
	assert.Empty(t, s.Cart())
	assert.Equal(t, models.StageComplete, s.Checkout().Stage)
	require.Len(t, sched.pending, 1)
	assert.Equal(t, checkout.ResetDelay, sched.delays[0])

	sched.runPending()
	assert.Equal(t, models.StageInitial, s.Checkout().Stage)
}

func TestCheckoutSpecificProduct(t *testing.T) {
	m, sched := newTestManager(t)
	s := m.Get("u1")

	// An unrelated cart item must survive the single-product checkout.
	_, err := s.HandleTurn("add smart watch to cart")
	require.NoError(t, err)

	res, err := s.HandleTurn("checkout wireless headphones now")
	require.NoError(t, err)
	require.Len(t, res.Messages, 2)
	assert.Equal(t, "I'll check out the Wireless Headphones for you. Here's the product:", res.Messages[1].Text)

	state := s.Checkout()
	require.NotNil(t, state.SpecificProduct)
	assert.Equal(t, "p1", state.SpecificProduct.ID)

	// The address prompt follows after the presentation delay.
	require.Len(t, sched.pending, 1)
	assert.Equal(t, time.Second, sched.delays[0])
	before := len(s.Messages())
	sched.runPending()
	msgs := s.Messages()
	require.Len(t, msgs, before+1)
	assert.Contains(t, msgs[len(msgs)-1].Text, "please provide your delivery address")

	_, err = s.HandleTurn(fullAddress)
	require.NoError(t, err)
	_, err = s.HandleTurn("paypal")
	require.NoError(t, err)
	res, err = s.HandleTurn("confirm")
	require.NoError(t, err)

	require.NotNil(t, res.Order)
	assert.Equal(t, 149.99, res.Order.TotalAmount)

	// The shared cart still holds the watch.
	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "p2", cart[0].ID)
}

func TestAddToCartClickPath(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Get("u1")

	store := catalog.NewStore(catalog.SeedCategories(), catalog.SeedProducts())
	watch, ok := store.FindByID("p2")
	require.True(t, ok)

	res := s.AddToCart(watch)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, "Your shopping cart has 1 item with a total of $199.99.", res.Messages[0].Text)
	assert.Len(t, s.Cart(), 1)
}

func TestNoticeAppendsSystemMessage(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Get("u1")

	msg := s.Notice("Error recognizing speech. Please try again.")
	assert.True(t, msg.System)
	assert.Equal(t, models.SenderAssistant, msg.Sender)

	msgs := s.Messages()
	assert.Equal(t, msg.ID, msgs[len(msgs)-1].ID)
}

// fakeRecognizer replays a canned transcript and then fails, exercising both
// callback paths of Listen.
type fakeRecognizer struct {
	transcript string
	fail       bool
	stopped    bool
}

func (f *fakeRecognizer) Start(onResult func(string), onEnd func(), onError func(string)) func() {
	if f.fail {
		onError("no-speech")
	} else {
		onResult(f.transcript)
		onEnd()
	}
	return func() { f.stopped = true }
}

func TestListenFeedsTranscriptsThroughTurns(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Get("u1")

	rec := &fakeRecognizer{transcript: "add wireless headphones to cart"}
	stop := s.Listen(rec)
	stop()
	assert.True(t, rec.stopped)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "p1", cart[0].ID)
}

func TestListenErrorLeavesSessionUsable(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Get("u1")

	s.Listen(&fakeRecognizer{fail: true})

	msgs := s.Messages()
	last := msgs[len(msgs)-1]
	assert.Equal(t, "Error recognizing speech. Please try again.", last.Text)
	assert.True(t, last.System)

	_, err := s.HandleTurn("help")
	assert.NoError(t, err)
}

func TestNotifyObserverSeesEveryMessage(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Get("u1")

	var seen []models.Message
	s.SetNotify(func(msg models.Message) { seen = append(seen, msg) })

	_, err := s.HandleTurn("help")
	require.NoError(t, err)
	require.Len(t, seen, 2)
	assert.Equal(t, models.SenderUser, seen[0].Sender)
	assert.Equal(t, models.SenderAssistant, seen[1].Sender)
}

func TestSnapshotFor(t *testing.T) {
	m, _ := newTestManager(t)

	snap := m.SnapshotFor("u1")
	assert.NotEmpty(t, snap.SessionID)
	require.Len(t, snap.Messages, 1)
	assert.Equal(t, models.StageInitial, snap.Checkout.Stage)
	assert.Empty(t, snap.Cart)
}
