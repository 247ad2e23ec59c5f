package session

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/assistant"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/catalog"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/checkout"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/models"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/speech"
)

// ErrSessionBusy is returned when a turn arrives while a previous turn is
// still being processed. Overlapping submissions are rejected, not queued.
var ErrSessionBusy = errors.New("a previous turn is still being processed")

// checkoutKickoffDelay lets the product-presentation message render before
// the address prompt follows it.
const checkoutKickoffDelay = time.Second

var (
	addToCartRe       = regexp.MustCompile(`(?i)add\s+(.*?)\s+to\s+(?:my\s+)?cart`)
	checkoutProductRe = regexp.MustCompile(`(?i)checkout\s+(.*?)(?:\s+now)?$`)
	checkoutObjectRe  = regexp.MustCompile(`checkout\s+.+`)
)

// Scheduler defers fn by d without blocking. Injected so tests can run
// deferred work synchronously.
type Scheduler func(d time.Duration, fn func())

// Deps are the collaborators a session needs. Zero fields get production
// defaults in NewManager.
type Deps struct {
	Store      *catalog.Store
	Classifier *assistant.Classifier
	Responder  *assistant.Responder
	Engine     *checkout.Engine
	Speaker    speech.Synthesizer
	Clock      func() time.Time
	Schedule   Scheduler
}

// TurnResult is everything one accepted turn produced.
type TurnResult struct {
	Messages []models.Message // user message plus assistant replies, in order
	Order    *models.Order    // set when a checkout completed this turn
}

// Session owns one conversation: transcript, cart, and checkout state. All
// mutation happens under the session lock, one turn at a time.
type Session struct {
	ID     string
	UserID string

	mu       sync.Mutex
	seq      int64
	messages []models.Message
	cart     []models.Product
	checkout models.CheckoutState
	notify   func(models.Message)

	deps Deps
}

func newSession(userID string, deps Deps) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		UserID:   userID,
		checkout: models.CheckoutState{Stage: models.StageInitial},
		deps:     deps,
	}
	s.greet()
	return s
}

func (s *Session) greet() {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp := s.deps.Responder.Respond(s.deps.Classifier.Classify("hello"), "hello", nil)
	s.appendAssistant(resp.Text, nil, false)
}

// HandleTurn processes one user utterance. Exactly one user message is
// appended per accepted turn; assistant replies follow. It never fails for
// conversational reasons — the only error is ErrSessionBusy.
func (s *Session) HandleTurn(text string) (TurnResult, error) {
	if strings.TrimSpace(text) == "" {
		return TurnResult{}, nil
	}
	if !s.mu.TryLock() {
		return TurnResult{}, ErrSessionBusy
	}
	defer s.mu.Unlock()

	var res TurnResult
	res.Messages = append(res.Messages, s.append(models.Message{Sender: models.SenderUser, Text: text}))

	// Mid-checkout turns go straight to the dialogue engine; classification
	// is bypassed entirely.
	if s.checkout.Stage != models.StageInitial && s.checkout.Stage != models.StageComplete {
		s.runCheckout(&res, text)
		return res, nil
	}

	// Explicit "add <name> to cart".
	if m := addToCartRe.FindStringSubmatch(text); m != nil {
		if product, ok := s.deps.Store.FindByNameFuzzy(m[1]); ok {
			s.cart = append(s.cart, product)
			text := fmt.Sprintf("I've added the %s to your cart.", product.Name)
			res.Messages = append(res.Messages, s.appendAssistant(text, []models.Product{product}, false))
			s.speak(text)
			return res, nil
		}
	}

	// Explicit "checkout <name> [now]".
	if m := checkoutProductRe.FindStringSubmatch(text); m != nil && strings.TrimSpace(m[1]) != "" {
		if product, ok := s.deps.Store.FindByNameFuzzy(m[1]); ok {
			p := product
			s.checkout = models.CheckoutState{Stage: models.StageInitial, SpecificProduct: &p}
			text := fmt.Sprintf("I'll check out the %s for you. Here's the product:", product.Name)
			res.Messages = append(res.Messages, s.appendAssistant(text, []models.Product{product}, false))
			s.deps.Schedule(checkoutKickoffDelay, func() {
				s.mu.Lock()
				defer s.mu.Unlock()
				var kick TurnResult
				s.runCheckout(&kick, "")
			})
			return res, nil
		}
	}

	// Bare "checkout" with no trailing object starts the dialogue directly.
	lower := strings.ToLower(text)
	if strings.Contains(lower, "checkout") && !checkoutObjectRe.MatchString(lower) {
		s.runCheckout(&res, "")
		return res, nil
	}

	resp := s.deps.Responder.Respond(s.deps.Classifier.Classify(text), text, s.cart)
	res.Messages = append(res.Messages, s.appendAssistant(resp.Text, resp.Products, false))
	s.speak(resp.Text)
	return res, nil
}

// runCheckout advances the dialogue engine and applies its side effects.
// Caller holds the lock.
func (s *Session) runCheckout(res *TurnResult, input string) {
	result := s.deps.Engine.Advance(&s.checkout, s.cart, input)
	for _, r := range result.Replies {
		res.Messages = append(res.Messages, s.appendAssistant(r.Text, r.Products, r.System))
		s.speak(r.Text)
	}
	if result.ClearCart {
		s.cart = nil
	}
	if result.Order != nil {
		result.Order.UserID = s.UserID
		res.Order = result.Order
	}
	if result.ResetAfter > 0 {
		s.deps.Schedule(result.ResetAfter, func() {
			s.mu.Lock()
			s.checkout = models.CheckoutState{Stage: models.StageInitial}
			s.mu.Unlock()
		})
	}
}

// Listen starts a voice capture and feeds the recognized transcript through
// the normal turn path. Recognition failures surface as a transient system
// notice and the session stays usable in text mode.
func (s *Session) Listen(r speech.Recognizer) (stop func()) {
	return r.Start(
		func(transcript string) {
			if _, err := s.HandleTurn(transcript); err != nil {
				// Busy session: last submission wins, this one is dropped.
				return
			}
		},
		func() {},
		func(reason string) {
			s.Notice("Error recognizing speech. Please try again.")
		},
	)
}

// Notice appends a transient system message, used to report external-service
// failures (speech recognition and the like) without ending the session.
func (s *Session) Notice(text string) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendAssistant(text, nil, true)
}

// AddToCart appends a product copy, mirroring a click in the product grid,
// and replies with the current cart summary.
func (s *Session) AddToCart(product models.Product) TurnResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = append(s.cart, product)
	resp := s.deps.Responder.Respond(assistant.Classification{Intent: assistant.IntentCart}, "", s.cart)
	return TurnResult{Messages: []models.Message{s.appendAssistant(resp.Text, resp.Products, false)}}
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Cart returns a copy of the cart contents.
func (s *Session) Cart() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.cart))
	copy(out, s.cart)
	return out
}

// Checkout returns the current checkout state.
func (s *Session) Checkout() models.CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout
}

// SetNotify registers an observer invoked for every appended message,
// including ones produced by deferred checkout steps. The callback runs under
// the session lock and must not block.
func (s *Session) SetNotify(fn func(models.Message)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify = fn
}

func (s *Session) append(m models.Message) models.Message {
	s.seq++
	m.ID = fmt.Sprintf("%d-%d", s.deps.Clock().UnixMilli(), s.seq)
	s.messages = append(s.messages, m)
	if s.notify != nil {
		s.notify(m)
	}
	return m
}

func (s *Session) appendAssistant(text string, products []models.Product, system bool) models.Message {
	return s.append(models.Message{
		Sender:   models.SenderAssistant,
		Text:     text,
		Products: products,
		System:   system,
	})
}

func (s *Session) speak(text string) {
	if s.deps.Speaker == nil {
		return
	}
	// Fire-and-forget; a broken synthesizer must not stall the turn.
	go s.deps.Speaker.Speak(text)
}
