package memory

// Category classifies a memory fact.
type Category string

const (
	CategoryPricing    Category = "pricing"
	CategoryClient     Category = "client"
	CategoryPreference Category = "preference"
	CategoryMisc       Category = "misc"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPricing, CategoryClient, CategoryPreference, CategoryMisc:
		return true
	}
	return false
}

// Fact is a single user-supplied piece of long-term context. Facts are
// immutable once created; edits are modeled as remove + add.
type Fact struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Content  string   `json:"content"`
}

// CreateFactRequest is the API payload for adding a fact.
type CreateFactRequest struct {
	Category string `json:"category" validate:"required,oneof=pricing client preference misc"`
	Content  string `json:"content" validate:"required,min=1"`
}

// SeedFacts returns the built-in default fact list used when nothing has
// been persisted yet or the persisted value cannot be parsed.
func SeedFacts() []Fact {
	return []Fact{
		{ID: "1", Category: CategoryPricing, Content: "Rigging Basic: $500, Advanced: $1200"},
		{ID: "2", Category: CategoryPreference, Content: "Uses lots of ✨ and 💜 emojis."},
	}
}
