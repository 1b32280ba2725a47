package deck

import (
	"github.com/luca-patrignani/card-dealer/domain/card"
	"github.com/luca-patrignani/card-dealer/domain/random"
)

// Size52 is the number of cards in a freshly constructed deck.
const Size52 = 52

// Deck is an ordered stack of cards. The last card of the stack is the top
// of the deck, the one returned by the next Deal.
type Deck struct {
	cards  []card.Card
	source random.Source
}

type deckOption func(*Deck)

// WithSource sets the random source used by Shuffle. A nil source keeps
// the default one.
func WithSource(source random.Source) deckOption {
	return func(d *Deck) {
		if source != nil {
			d.source = source
		}
	}
}

// New creates an unshuffled deck of 52 unique cards.
//
// Cards are stacked suit by suit and, within a suit, rank by rank, following
// the enumeration order of card.Suits and card.Ranks. The bottom card is the
// TWO of DIAMONDS and the top card is the ACE of SPADES.
func New(opts ...deckOption) *Deck {
	d := &Deck{
		cards:  make([]card.Card, 0, Size52),
		source: random.New(),
	}
	for _, s := range card.Suits() {
		for _, r := range card.Ranks() {
			d.cards = append(d.cards, card.New(s, r))
		}
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Deal removes and returns the top card. An empty deck returns the null card.
func (d *Deck) Deal() card.Card {
	if len(d.cards) == 0 {
		return card.Card{}
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top
}

// Clear discards every card left in the deck.
func (d *Deck) Clear() {
	d.cards = d.cards[:0]
}

// Size returns the number of cards in the deck.
func (d *Deck) Size() int {
	return len(d.cards)
}

// Cards returns a copy of the stack, bottom card first.
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}
