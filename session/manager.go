package session

import (
	"sync"
	"time"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/assistant"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/checkout"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/models"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/speech"
)

// Manager hands out one session per user and fills in production defaults
// for any dependency the caller left unset.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	deps     Deps
}

func NewManager(deps Deps) *Manager {
	if deps.Classifier == nil {
		deps.Classifier = assistant.NewClassifier(deps.Store)
	}
	if deps.Responder == nil {
		deps.Responder = assistant.NewResponder(deps.Store, nil)
	}
	if deps.Engine == nil {
		deps.Engine = checkout.NewEngine(nil, nil)
	}
	if deps.Speaker == nil {
		deps.Speaker = speech.NoopSynthesizer{}
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Schedule == nil {
		deps.Schedule = func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		}
	}
	return &Manager{
		sessions: make(map[string]*Session),
		deps:     deps,
	}
}

// Get returns the user's session, creating it (with the opening greeting) on
// first use.
func (m *Manager) Get(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID]; ok {
		return s
	}
	s := newSession(userID, m.deps)
	m.sessions[userID] = s
	return s
}

// Reset discards the user's session and starts a fresh one.
func (m *Manager) Reset(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := newSession(userID, m.deps)
	m.sessions[userID] = s
	return s
}

// Snapshot is the presentation view of a session: the transcript plus the
// state the renderer needs next to it.
type Snapshot struct {
	SessionID string               `json:"session_id"`
	Messages  []models.Message     `json:"messages"`
	Cart      []models.Product     `json:"cart"`
	Checkout  models.CheckoutState `json:"checkout"`
}

func (m *Manager) SnapshotFor(userID string) Snapshot {
	s := m.Get(userID)
	return Snapshot{
		SessionID: s.ID,
		Messages:  s.Messages(),
		Cart:      s.Cart(),
		Checkout:  s.Checkout(),
	}
}
