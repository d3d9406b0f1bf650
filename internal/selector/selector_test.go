package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quayside/cardboard/internal/card"
	"github.com/quayside/cardboard/internal/diag"
	"github.com/quayside/cardboard/internal/launch"
)

func testCards() []*card.Card {
	return []*card.Card{
		{ID: "tools.editor", Category: "Tools", Subcategory: "Editor", URL: "https://ex.org/e"},
		{ID: "tools.viewer", Category: "Tools", Subcategory: "Viewer", URL: ""},
		{ID: "docs.guide", Category: "Docs", Subcategory: "Guide", URL: "https://ex.org/g"},
	}
}

func newTestSelector(cards []*card.Card) (*Selector, *launch.Recorder, *diag.MemorySink) {
	rec := &launch.Recorder{}
	sink := diag.NewMemorySink()
	sel := New(rec, sink)
	sel.Bind(cards)
	return sel, rec, sink
}

func activeIDs(cards []*card.Card) []string {
	var ids []string
	for _, c := range cards {
		if c.Active {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

func TestNoCardActiveBeforeFirstClick(t *testing.T) {
	cards := testCards()
	sel, _, _ := newTestSelector(cards)

	assert.Nil(t, sel.Active())
	assert.Empty(t, activeIDs(cards))
}

func TestClickExclusivity(t *testing.T) {
	cards := testCards()
	sel, _, _ := newTestSelector(cards)

	// Exactly the most recently clicked card is active after every click.
	for _, c := range []*card.Card{cards[0], cards[2], cards[1], cards[0]} {
		sel.Click(c)
		assert.Equal(t, []string{c.ID}, activeIDs(cards))
		assert.Same(t, c, sel.Active())
	}
}

func TestClickSameCardTwice(t *testing.T) {
	cards := testCards()
	sel, rec, sink := newTestSelector(cards)

	sel.Click(cards[0])
	sel.Click(cards[0])

	// Active set unchanged, effects produced twice.
	assert.Equal(t, []string{"tools.editor"}, activeIDs(cards))
	assert.Equal(t, []string{"https://ex.org/e", "https://ex.org/e"}, rec.URLs)
	assert.Equal(t, []string{
		"Selected: Tools > Editor",
		"Selected: Tools > Editor",
	}, sink.Messages())
}

func TestBindEmptyCollection(t *testing.T) {
	sel, rec, sink := newTestSelector(nil)

	assert.Nil(t, sel.Active())
	assert.Empty(t, rec.URLs)
	assert.Empty(t, sink.Records())
}

func TestClickWithURL(t *testing.T) {
	cards := testCards()
	sel, rec, sink := newTestSelector(cards)

	sel.Click(cards[0])

	assert.Equal(t, []string{"https://ex.org/e"}, rec.URLs)
	require.Len(t, sink.Records(), 1)
	assert.Equal(t, "Selected: Tools > Editor", sink.Records()[0].Message)
	assert.Equal(t, diag.LevelInfo, sink.Records()[0].Level)
}

func TestClickWithoutURL(t *testing.T) {
	cards := testCards()
	sel, rec, sink := newTestSelector(cards)

	sel.Click(cards[1])

	assert.Empty(t, rec.URLs)
	require.Len(t, sink.Records(), 2)
	assert.Equal(t, "Selected: Tools > Viewer", sink.Records()[0].Message)
	assert.Equal(t, "No URL specified for Tools > Viewer", sink.Records()[1].Message)
	assert.Equal(t, diag.LevelWarn, sink.Records()[1].Level)
}

// orderRecorder captures how many diagnostic records existed at the moment
// of each open request, to pin down Selected-before-open ordering.
type orderRecorder struct {
	sink  *diag.MemorySink
	calls []int // number of records logged at the time of each open
}

func (r *orderRecorder) Open(url string) error {
	r.calls = append(r.calls, len(r.sink.Records()))
	return nil
}

func TestSelectedLoggedBeforeOpen(t *testing.T) {
	cards := testCards()
	sink := diag.NewMemorySink()
	rec := &orderRecorder{sink: sink}
	sel := New(rec, sink)
	sel.Bind(cards)

	sel.Click(cards[0])
	sel.Click(cards[2])

	require.Len(t, rec.calls, 2)
	// One Selected record had been logged before the first open, two
	// before the second.
	assert.Equal(t, []int{1, 2}, rec.calls)
}

func TestScenario(t *testing.T) {
	cards := testCards()
	sel, rec, sink := newTestSelector(cards)

	sel.Click(cards[0])
	assert.Equal(t, []string{"tools.editor"}, activeIDs(cards))

	sel.Click(cards[1])
	assert.Equal(t, []string{"tools.viewer"}, activeIDs(cards))
	assert.False(t, cards[0].Active)

	sel.Click(cards[2])
	assert.Equal(t, []string{"docs.guide"}, activeIDs(cards))

	assert.Equal(t, []string{"https://ex.org/e", "https://ex.org/g"}, rec.URLs)
	assert.Equal(t, []string{
		"Selected: Tools > Editor",
		"Selected: Tools > Viewer",
		"No URL specified for Tools > Viewer",
		"Selected: Docs > Guide",
	}, sink.Messages())
}
