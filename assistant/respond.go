package assistant

import (
	"fmt"
	"math/rand"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/catalog"
	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/models"
)

// Response is one assistant reply: text, an optional product list for the
// presentation layer, and an action tag. Every branch returns a well-formed
// response; the responder never errors.
type Response struct {
	Text     string
	Products []models.Product
	Action   string
}

var greetings = []string{
	"Hello! How can I help you with your shopping today?",
	"Hi there! I'm your virtual shopping assistant. What can I help you find?",
	"Welcome! I'm here to assist with your shopping. What are you looking for?",
	"Greetings! How may I assist you with your shopping experience today?",
}

const helpText = `I can help you with:
- Finding products (try "Find headphones")
- Browsing categories (try "Show me electronics")
- Managing your cart (try "View my cart")
- Checking out (try "Checkout")
What would you like to do?`

// Responder turns a classification plus the current cart into a reply.
// The random source is injectable so greeting choice can be pinned in tests.
type Responder struct {
	store   *catalog.Store
	randInt func(n int) int
}

func NewResponder(store *catalog.Store, randInt func(n int) int) *Responder {
	if randInt == nil {
		randInt = rand.Intn
	}
	return &Responder{store: store, randInt: randInt}
}

// Respond generates the assistant reply for a classified turn. rawInput is
// the original user text, used only by the fallback search.
func (r *Responder) Respond(cl Classification, rawInput string, cart []models.Product) Response {
	switch cl.Intent {
	case IntentGreeting:
		return Response{Text: greetings[r.randInt(len(greetings))]}

	case IntentHelp:
		return Response{Text: helpText}

	case IntentSearch:
		return r.respondSearch(cl.Query)

	case IntentCategory:
		return r.respondCategory(cl.CategoryID)

	case IntentCart:
		return r.respondCart(cart)

	case IntentCheckout:
		if len(cart) == 0 {
			return Response{Text: "Your shopping cart is empty. Add some items before checkout.", Action: "checkout"}
		}
		return Response{Text: "Ready to check out? Let's proceed with your order.", Action: "checkout"}

	default:
		// Last resort: treat the raw input as a search query.
		results := r.store.Search(rawInput)
		if len(results) > 0 {
			return Response{
				Text:     "Here are some products that might match what you're looking for:",
				Products: results,
				Action:   "search",
			}
		}
		return Response{Text: "I'm not sure I understood that. Can you try rephrasing or ask for help?", Action: "unknown"}
	}
}

func (r *Responder) respondSearch(query string) Response {
	if query == "" {
		return Response{Text: "What would you like to search for?"}
	}
	results := r.store.Search(query)
	if len(results) == 0 {
		return Response{
			Text:     fmt.Sprintf("I couldn't find any products matching %q. Would you like to try a different search term?", query),
			Products: []models.Product{},
			Action:   "search",
		}
	}
	return Response{
		Text:     fmt.Sprintf("I found %d product%s matching %q:", len(results), plural(len(results)), query),
		Products: results,
		Action:   "search",
	}
}

func (r *Responder) respondCategory(categoryID string) Response {
	if categoryID == "" {
		return Response{Text: "Which category would you like to browse?", Action: "category"}
	}
	display := categoryID
	if cat, ok := r.store.CategoryByID(categoryID); ok {
		display = cat.Name
	}
	products := r.store.ByCategory(categoryID)
	if len(products) == 0 {
		return Response{
			Text:   fmt.Sprintf("I couldn't find any products in the %s category.", display),
			Action: "category",
		}
	}
	return Response{
		Text:     fmt.Sprintf("Here are products in the %s category:", display),
		Products: products,
		Action:   "category",
	}
}

func (r *Responder) respondCart(cart []models.Product) Response {
	if len(cart) == 0 {
		return Response{Text: "Your shopping cart is empty. Would you like to browse our products?", Action: "cart"}
	}
	var total float64
	for _, item := range cart {
		total += item.Price
	}
	return Response{
		Text:     fmt.Sprintf("Your shopping cart has %d item%s with a total of $%.2f.", len(cart), plural(len(cart)), total),
		Products: cart,
		Action:   "cart",
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
