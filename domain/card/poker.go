package card

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// pokerSuits maps a Suit to the suit numbering of github.com/paulhankin/poker
// (clubs, diamonds, hearts, spades).
var pokerSuits = map[Suit]poker.Suit{
	Clubs:    0,
	Diamonds: 1,
	Hearts:   2,
	Spades:   3,
}

// Poker converts c to the card representation of github.com/paulhankin/poker,
// so dealt hands can be handed to an evaluator built on it. Ranks follow that
// package's numbering, where the ace is 1.
//
// Returns an error for the null card.
func (c Card) Poker() (poker.Card, error) {
	var zero poker.Card
	if c.IsNull() {
		return zero, fmt.Errorf("cannot convert null card")
	}
	rank := poker.Rank(c.rank)
	if c.rank == Ace {
		rank = 1
	}
	pc, err := poker.MakeCard(pokerSuits[c.suit], rank)
	if err != nil {
		return zero, fmt.Errorf("invalid card %s: %w", c, err)
	}
	return pc, nil
}
