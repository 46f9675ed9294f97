// internal/services/intent_service.go
package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/electromart/support-backend/internal/models"
)

// intentRule pairs trigger keywords with a builder. Rules are evaluated
// in declaration order and the first match wins, so the priority of the
// cascade is the order of the slice.
type intentRule struct {
	keywords []string
	build    func(r *IntentResolver, message string) models.Resolution
}

// brandCue maps a message token to the brand filter it implies. Cues are
// checked in order; the first token present wins.
type brandCue struct {
	token string
	brand string
}

// IntentResolver maps a raw message onto one intent via ordered keyword
// containment. No scoring, no backtracking: a message holding both
// "laptop" and "camera" resolves as Laptop because that rule comes first.
type IntentResolver struct {
	rules         []intentRule
	knownProducts []string
}

// numericToken matches the first run of digits with optional leading $
// and embedded thousands separators, e.g. "$1,200" or "4.5".
var numericToken = regexp.MustCompile(`\$?\d[\d,]*(?:\.\d+)?`)

// knownProductNames is the fixed lower-cased lookup list scanned for
// stock and detail hints. It mirrors the seeded catalog.
var knownProductNames = []string{
	"dell xps 13",
	"macbook air m3",
	"hp pavilion 15",
	"iphone 15 pro",
	"samsung galaxy s24",
	"sony wh-1000xm5",
	"airpods pro 2",
	"lg c3 oled 55",
	"samsung crystal uhd 50",
	"canon eos r50",
}

func NewIntentResolver() *IntentResolver {
	r := &IntentResolver{knownProducts: knownProductNames}

	r.rules = []intentRule{
		{
			keywords: []string{"laptop", "computer", "notebook"},
			build: func(r *IntentResolver, message string) models.Resolution {
				return r.browse(message, "Laptop", []brandCue{
					{"dell", "Dell"},
					{"apple", "Apple"},
					{"hp", "HP"},
				})
			},
		},
		{
			keywords: []string{"smartphone", "phone"},
			build: func(r *IntentResolver, message string) models.Resolution {
				return r.browse(message, "Smartphone", []brandCue{
					{"samsung", "Samsung"},
					{"iphone", "Apple"},
					{"apple", "Apple"},
				})
			},
		},
		{
			keywords: []string{"headphone", "earbud"},
			build: func(r *IntentResolver, message string) models.Resolution {
				return r.browse(message, "Headphones", []brandCue{
					{"sony", "Sony"},
					{"apple", "Apple"},
				})
			},
		},
		{
			keywords: []string{"tv", "television"},
			build: func(r *IntentResolver, message string) models.Resolution {
				return r.browse(message, "TV", []brandCue{
					{"lg", "LG"},
				})
			},
		},
		{
			keywords: []string{"camera"},
			build: func(r *IntentResolver, message string) models.Resolution {
				return r.browse(message, "Camera", []brandCue{
					{"canon", "Canon"},
				})
			},
		},
		{
			keywords: []string{"stock", "available"},
			build: func(r *IntentResolver, message string) models.Resolution {
				return models.Resolution{
					Kind:        models.IntentStockCheck,
					ProductHint: r.findKnownProduct(message),
				}
			},
		},
		{
			keywords: []string{"details", "about"},
			build: func(r *IntentResolver, message string) models.Resolution {
				return models.Resolution{
					Kind:        models.IntentProductDetail,
					ProductHint: r.findKnownProduct(message),
				}
			},
		},
	}

	return r
}

// Resolve classifies one message. Matching is literal lower-cased
// substring containment over the whole message.
func (r *IntentResolver) Resolve(message string) models.Resolution {
	msg := strings.ToLower(message)

	for _, rule := range r.rules {
		if containsAny(msg, rule.keywords) {
			return rule.build(r, msg)
		}
	}

	return models.Resolution{Kind: models.IntentGeneral}
}

func (r *IntentResolver) browse(message, category string, brands []brandCue) models.Resolution {
	filter := models.QueryFilter{Category: category}

	for _, cue := range brands {
		if strings.Contains(message, cue.token) {
			filter.Brand = cue.brand
			break
		}
	}

	// The rating check scans the whole message, not the token
	// neighborhood, so "4 star rating laptops" puts 4 on the rating
	// bound rather than the price one.
	if value, ok := firstNumericToken(message); ok {
		if strings.Contains(message, "rating") {
			filter.RatingMin = &value
		} else {
			filter.PriceMax = &value
		}
	}

	return models.Resolution{Kind: models.IntentCategoryBrowse, Filter: filter}
}

// findKnownProduct returns the first catalog product name contained in
// the message, or empty when none is.
func (r *IntentResolver) findKnownProduct(message string) string {
	for _, name := range r.knownProducts {
		if strings.Contains(message, name) {
			return name
		}
	}
	return ""
}

func containsAny(message string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}

// firstNumericToken extracts the first numeric token from the message,
// stripping any $ prefix and thousands separators. Later tokens are
// ignored.
func firstNumericToken(message string) (float64, bool) {
	match := numericToken.FindString(message)
	if match == "" {
		return 0, false
	}

	cleaned := strings.NewReplacer("$", "", ",", "").Replace(match)
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}
