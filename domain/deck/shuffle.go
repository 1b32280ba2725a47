package deck

import "github.com/luca-patrignani/card-dealer/domain/random"

// Shuffle reorders the deck in place with the modern Fisher-Yates algorithm:
// for i from n-1 down to 1 it draws j uniformly from [0, i] and exchanges
// the cards at positions i and j. Every permutation of the current cards is
// equally likely given a uniform source. Decks with fewer than two cards are
// left untouched.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := random.InRange(d.source, 0, i)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}
