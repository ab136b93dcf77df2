// Package classify maps raw query text to a single typed intent.
package classify

import (
	"strings"

	"github.com/bestiary/creaturedex/model"
)

// typeKeywords is the fixed enumerated type set. A query token matching one
// of these classifies the query as a type search.
var typeKeywords = map[string]bool{
	"normal":   true,
	"fire":     true,
	"water":    true,
	"grass":    true,
	"electric": true,
	"ice":      true,
	"fighting": true,
	"poison":   true,
	"ground":   true,
	"flying":   true,
	"psychic":  true,
	"bug":      true,
	"rock":     true,
	"ghost":    true,
	"dragon":   true,
	"dark":     true,
	"steel":    true,
	"fairy":    true,
}

// regionNames is the fixed region set, in evaluation order.
var regionNames = []string{
	"kanto",
	"johto",
	"hoenn",
	"sinnoh",
	"hisui",
	"unova",
	"kalos",
	"alola",
	"galar",
	"paldea",
}

// Classifier maps free text to exactly one ClassifiedQuery variant. It is
// deterministic, case-insensitive, and whitespace-trimmed, and it is total:
// every input classifies, falling back to a name query.
type Classifier struct{}

// NewClassifier creates a Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify evaluates the rules in a fixed order: type, generation, region,
// category, then the name fallback. The order is load-bearing: a
// multi-intent query like "fire legendary" classifies as Type(fire) because
// type keywords are checked first. Known limitation, not a bug to fix with a
// multi-intent combinator.
func (c *Classifier) Classify(text string) model.ClassifiedQuery {
	trimmed := strings.TrimSpace(text)
	lowered := strings.ToLower(trimmed)

	// 1. Type: any whole token from the fixed type set.
	for _, token := range strings.Fields(lowered) {
		if typeKeywords[token] {
			return model.TypeQuery(token)
		}
	}

	// 2. Generation: "gen"/"generation" plus a digit 1-9.
	if strings.Contains(lowered, "gen") {
		if n, ok := firstGenerationDigit(lowered); ok {
			return model.GenerationQuery(n)
		}
	}

	// 3. Region: any known region name appearing in the text.
	for _, region := range regionNames {
		if strings.Contains(lowered, region) {
			return model.RegionQuery(region)
		}
	}

	// 4. Category keywords.
	if strings.Contains(lowered, "legend") {
		return model.CategoryQuery(model.CategoryLegendary)
	}
	if strings.Contains(lowered, "starter") {
		return model.CategoryQuery(model.CategoryStarter)
	}
	if strings.Contains(lowered, "evolution") || strings.Contains(lowered, "evolve") {
		return model.CategoryQuery(model.CategoryEvolution)
	}

	// 5. Fallback: the trimmed text as a fuzzy name query.
	return model.NameQuery(trimmed)
}

// firstGenerationDigit returns the first digit 1-9 found in the text.
func firstGenerationDigit(text string) (int, bool) {
	for _, r := range text {
		if r >= '1' && r <= '9' {
			return int(r - '0'), true
		}
	}
	return 0, false
}
