package model

// IntentKind identifies which variant of a ClassifiedQuery is active.
type IntentKind string

const (
	IntentName       IntentKind = "name"
	IntentType       IntentKind = "type"
	IntentGeneration IntentKind = "generation"
	IntentRegion     IntentKind = "region"
	IntentCategory   IntentKind = "category"
)

// CategoryKind is the fixed set of special-category queries.
type CategoryKind string

const (
	CategoryLegendary CategoryKind = "legendary"
	CategoryStarter   CategoryKind = "starter"
	CategoryEvolution CategoryKind = "evolution"
)

// ClassifiedQuery is a tagged variant produced by the classifier. Exactly one
// payload field is meaningful, selected by Intent; the others hold their zero
// values. Use the constructor functions rather than building one by hand.
type ClassifiedQuery struct {
	Intent     IntentKind   `json:"intent"`
	Name       string       `json:"name,omitempty"`
	TypeID     string       `json:"type_id,omitempty"`
	Generation int          `json:"generation,omitempty"`
	Region     string       `json:"region,omitempty"`
	Category   CategoryKind `json:"category,omitempty"`
}

// NameQuery builds the fallback free-text variant.
func NameQuery(text string) ClassifiedQuery {
	return ClassifiedQuery{Intent: IntentName, Name: text}
}

// TypeQuery builds a query for all creatures of one type.
func TypeQuery(typeID string) ClassifiedQuery {
	return ClassifiedQuery{Intent: IntentType, TypeID: typeID}
}

// GenerationQuery builds a query for one generation (1-9).
func GenerationQuery(n int) ClassifiedQuery {
	return ClassifiedQuery{Intent: IntentGeneration, Generation: n}
}

// RegionQuery builds a query for a named region, resolved downstream to a
// generation via the repository's fixed lookup table.
func RegionQuery(region string) ClassifiedQuery {
	return ClassifiedQuery{Intent: IntentRegion, Region: region}
}

// CategoryQuery builds a query for a special category of creatures.
func CategoryQuery(kind CategoryKind) ClassifiedQuery {
	return ClassifiedQuery{Intent: IntentCategory, Category: kind}
}
