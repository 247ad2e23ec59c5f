package assistant

import (
	"regexp"
	"strings"

	"github.com/maheswaramsubrahmanyam/Virtual-Shopping-Assistant/catalog"
)

type Intent string

const (
	IntentGreeting Intent = "greeting"
	IntentHelp     Intent = "help"
	IntentSearch   Intent = "search"
	IntentCategory Intent = "category"
	IntentCart     Intent = "cart"
	IntentCheckout Intent = "checkout"
	IntentUnknown  Intent = "unknown"
)

// Classification is the result of routing one utterance.
type Classification struct {
	Intent     Intent
	Query      string
	CategoryID string
}

var (
	greetingRe    = regexp.MustCompile(`^(hi|hello|hey|greetings)`)
	helpRe        = regexp.MustCompile(`^(help|assist|support|what can you do)`)
	browseVerbRe  = regexp.MustCompile(`^(show|browse|view|display|list|show me|check out|see|look at)\s+`)
	searchVerbRe  = regexp.MustCompile(`^(find|search|looking for|show me|do you have|i want|i need|i'm looking for|i am looking for)`)
	searchStripRe = regexp.MustCompile(`^(find|search|looking for|show me|do you have|i want|i need|i'm looking for|i am looking for)\s+`)
	cartRe        = regexp.MustCompile(`^(cart|basket|my items|view cart|show cart)`)
	checkoutRe    = regexp.MustCompile(`^(checkout|pay|purchase|buy|order)`)
)

// categorySynonyms maps loose phrasings to category ids when no category name
// or id appears verbatim. Checked in this order, first hit wins.
var categorySynonyms = []struct {
	terms      []string
	categoryID string
}{
	{[]string{"electronic", "tech"}, "electronics"},
	{[]string{"cloth", "fashion", "wear"}, "clothing"},
	{[]string{"home", "garden", "house"}, "home-garden"},
	{[]string{"beauty", "cosmetic", "makeup"}, "beauty"},
	{[]string{"sport", "outdoor", "fitness"}, "sports"},
	{[]string{"book", "read", "novel"}, "books"},
	{[]string{"toy", "game", "play"}, "toys"},
	{[]string{"food", "drink", "beverage"}, "food"},
}

type rule struct {
	name  string
	apply func(lower string) (Classification, bool)
}

// Classifier maps free text to an intent using a priority-ordered rule list.
// The ordering is load-bearing: browse verbs outrank bare category terms,
// explicit search verbs outrank both, and anything unmatched becomes a search.
type Classifier struct {
	store *catalog.Store
	rules []rule
}

func NewClassifier(store *catalog.Store) *Classifier {
	c := &Classifier{store: store}
	c.rules = []rule{
		{"greeting", c.matchGreeting},
		{"help", c.matchHelp},
		{"browse-category", c.matchBrowseCategory},
		{"search-verb", c.matchSearchVerb},
		{"category-term", c.matchCategoryTerm},
		{"cart", c.matchCart},
		{"checkout", c.matchCheckout},
	}
	return c
}

// Classify evaluates the rules first-match-wins. It is pure and never fails;
// unmatched input falls back to a full-text search.
func (c *Classifier) Classify(text string) Classification {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, r := range c.rules {
		if cl, ok := r.apply(lower); ok {
			return cl
		}
	}
	return Classification{Intent: IntentSearch, Query: lower}
}

func (c *Classifier) matchGreeting(lower string) (Classification, bool) {
	if greetingRe.MatchString(lower) {
		return Classification{Intent: IntentGreeting}, true
	}
	return Classification{}, false
}

func (c *Classifier) matchHelp(lower string) (Classification, bool) {
	if helpRe.MatchString(lower) {
		return Classification{Intent: IntentHelp}, true
	}
	return Classification{}, false
}

func (c *Classifier) matchBrowseCategory(lower string) (Classification, bool) {
	categoryID, hasCategory := c.categoryTerm(lower)
	if hasCategory && browseVerbRe.MatchString(lower) {
		return Classification{Intent: IntentCategory, CategoryID: categoryID}, true
	}
	return Classification{}, false
}

func (c *Classifier) matchSearchVerb(lower string) (Classification, bool) {
	if !searchVerbRe.MatchString(lower) {
		return Classification{}, false
	}
	query := searchStripRe.ReplaceAllString(lower, "")

	// The remainder may itself name a category ("find electronics").
	if categoryID, ok := c.categoryTerm(query); ok {
		return Classification{Intent: IntentCategory, CategoryID: categoryID}, true
	}
	return Classification{Intent: IntentSearch, Query: query}, true
}

func (c *Classifier) matchCategoryTerm(lower string) (Classification, bool) {
	if categoryID, ok := c.categoryTerm(lower); ok {
		return Classification{Intent: IntentCategory, CategoryID: categoryID}, true
	}
	return Classification{}, false
}

func (c *Classifier) matchCart(lower string) (Classification, bool) {
	if cartRe.MatchString(lower) {
		return Classification{Intent: IntentCart}, true
	}
	return Classification{}, false
}

func (c *Classifier) matchCheckout(lower string) (Classification, bool) {
	if checkoutRe.MatchString(lower) {
		return Classification{Intent: IntentCheckout}, true
	}
	return Classification{}, false
}

// categoryTerm reports whether the input mentions a category, by display name
// or id first, then via the synonym table.
func (c *Classifier) categoryTerm(lower string) (string, bool) {
	for _, cat := range c.store.Categories() {
		if strings.Contains(lower, strings.ToLower(cat.Name)) ||
			strings.Contains(lower, strings.ToLower(cat.ID)) {
			return cat.ID, true
		}
	}
	for _, syn := range categorySynonyms {
		for _, term := range syn.terms {
			if strings.Contains(lower, term) {
				return syn.categoryID, true
			}
		}
	}
	return "", false
}
