// Package selector implements the card click contract: exclusive active
// state across a bound card collection, a "Selected" diagnostic per click,
// and a fire-and-forget browser request when the card has a URL.
package selector

import (
	"github.com/quayside/cardboard/internal/card"
	"github.com/quayside/cardboard/internal/diag"
	"github.com/quayside/cardboard/internal/launch"
)

// Selector owns the active flag of every card it is bound to. All calls
// happen on a single event loop; it holds no locks.
type Selector struct {
	cards  []*card.Card
	opener launch.Opener
	sink   diag.Sink
}

// New creates a selector that reports through sink and opens URLs through
// opener. Bind it to a board's cards before clicking.
func New(opener launch.Opener, sink diag.Sink) *Selector {
	return &Selector{opener: opener, sink: sink}
}

// Bind attaches the selector to the full card collection of a board.
// Binding an empty collection is valid and leaves nothing clickable.
func (s *Selector) Bind(cards []*card.Card) {
	s.cards = cards
}

// Click runs the click contract for card c:
//
//  1. clear every bound card's active flag, then mark c active
//  2. log "Selected: <category> > <subcategory>"
//  3. open c's URL in a new browsing context, or warn when it has none
//
// The all-clear completes before c is marked, and the Selected line is
// always logged before any open attempt. The open result is discarded.
func (s *Selector) Click(c *card.Card) {
	for _, b := range s.cards {
		b.Active = false
	}
	c.Active = true

	diag.Infof(s.sink, "Selected: %s", c.Label())

	if c.URL != "" {
		_ = s.opener.Open(c.URL)
		return
	}
	diag.Warnf(s.sink, "No URL specified for %s", c.Label())
}

// Active returns the active card, or nil before the first click.
func (s *Selector) Active() *card.Card {
	for _, c := range s.cards {
		if c.Active {
			return c
		}
	}
	return nil
}
