package card

import "strings"

// Card represents a launcher card on a board
type Card struct {
	ID          string // Canonical ID (e.g., tools.editor, docs.guide)
	Category    string // Category label as shown on the card
	Subcategory string // Subcategory label as shown on the card
	URL         string // Destination opened on click; empty is a valid gap
	Icon        string // Optional icon image path, relative to the board directory
	Active      bool   // At most one card on a board is active
}

// Label returns the "Category > Subcategory" form used in diagnostics.
func (c *Card) Label() string {
	return c.Category + " > " + c.Subcategory
}

// CanonicalID derives the canonical card ID for a category/subcategory pair.
func CanonicalID(category, subcategory string) string {
	return Slug(category) + "." + Slug(subcategory)
}

// Slug lowercases a label and collapses runs of non-alphanumeric characters
// into single dashes, so "Sea Surface Temp." becomes "sea-surface-temp".
func Slug(label string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}
	return b.String()
}
