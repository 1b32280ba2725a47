// Package dealer distributes the cards of a deck to a fixed number of players.
package dealer

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/luca-patrignani/card-dealer/domain/card"
	"github.com/luca-patrignani/card-dealer/domain/deck"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrPlayerOutOfRange = errors.New("player index out of range")
)

// Dealer is the result of dealing a deck round-robin: one hand per player,
// all of the same size, plus the cards left over. It is a snapshot and does
// not change after New returns.
type Dealer struct {
	id     string
	hands  [][]card.Card
	unused []card.Card
}

// New deals every card of d to players hands.
//
// Each player receives size/players cards, one card at a time: every player
// gets a first card before anyone gets a second one. The size%players cards
// that remain are collected as unused. The deck is empty when New returns.
//
// Parameters:
//   - d: the deck to deal, usually shuffled
//   - players: number of players, at least 1
//
// Returns an error wrapping ErrInvalidArgument if d is nil or players < 1;
// the deck is not touched in that case.
func New(d *deck.Deck, players int) (*Dealer, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil deck", ErrInvalidArgument)
	}
	if players < 1 {
		return nil, fmt.Errorf("%w: %d players, at least 1 is required", ErrInvalidArgument, players)
	}

	cardsPerPlayer := d.Size() / players
	remainder := d.Size() % players

	hands := make([][]card.Card, players)
	for p := range hands {
		hands[p] = make([]card.Card, cardsPerPlayer)
	}
	for slot := 0; slot < cardsPerPlayer; slot++ {
		for p := 0; p < players; p++ {
			hands[p][slot] = d.Deal()
		}
	}

	unused := make([]card.Card, 0, remainder)
	for d.Size() > 0 {
		unused = append(unused, d.Deal())
	}

	return &Dealer{
		id:     uuid.NewString(),
		hands:  hands,
		unused: unused,
	}, nil
}

// index maps a 1-based player number to a hand index. Player 0 is accepted
// as an alias for player 1.
func (dl *Dealer) index(player int) (int, error) {
	if player < 0 || player > len(dl.hands) {
		return 0, fmt.Errorf("%w: player %d, %d players", ErrPlayerOutOfRange, player, len(dl.hands))
	}
	if player == 0 {
		return 0, nil
	}
	return player - 1, nil
}

// DealtCount returns the number of cards dealt to player (1-based, 0 is the
// same as 1).
func (dl *Dealer) DealtCount(player int) (int, error) {
	idx, err := dl.index(player)
	if err != nil {
		return 0, err
	}
	return len(dl.hands[idx]), nil
}

// Hand returns a copy of the cards dealt to player, in the order they were
// dealt. Indexing follows DealtCount.
func (dl *Dealer) Hand(player int) ([]card.Card, error) {
	idx, err := dl.index(player)
	if err != nil {
		return nil, err
	}
	out := make([]card.Card, len(dl.hands[idx]))
	copy(out, dl.hands[idx])
	return out, nil
}

// UnusedCount returns the number of cards that were not dealt to anyone.
func (dl *Dealer) UnusedCount() int {
	return len(dl.unused)
}

// Unused returns a copy of the cards that were not dealt, in draw order.
func (dl *Dealer) Unused() []card.Card {
	out := make([]card.Card, len(dl.unused))
	copy(out, dl.unused)
	return out
}

func (dl *Dealer) Players() int {
	return len(dl.hands)
}

func (dl *Dealer) CardsPerPlayer() int {
	return len(dl.hands[0])
}

// ID identifies this deal, e.g. to correlate log lines.
func (dl *Dealer) ID() string {
	return dl.id
}
