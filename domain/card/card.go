package card

// Card represents a playing card with suit and rank.
// The zero value is the null card: NoSuit and NoRank.
type Card struct {
	suit Suit
	rank Rank
}

// New creates a Card from a suit and a rank.
//
// Parameters:
//   - suit: one of Diamonds, Clubs, Hearts, Spades
//   - rank: one of Two through Ace
//
// If either component is not a member of its enumeration, New returns the
// null card rather than an error.
func New(suit Suit, rank Rank) Card {
	if !suit.Valid() || !rank.Valid() {
		return Card{}
	}
	return Card{
		suit: suit,
		rank: rank,
	}
}

// Parse creates a Card from the upper-case names of a suit and a rank,
// e.g. Parse("SPADES", "ACE"). Unknown names yield the null card.
func Parse(suit, rank string) Card {
	s, ok := ParseSuit(suit)
	if !ok {
		return Card{}
	}
	r, ok := ParseRank(rank)
	if !ok {
		return Card{}
	}
	return New(s, r)
}

// Suit returns the suit of the Card, or NoSuit for the null card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the Card, or NoRank for the null card.
func (c Card) Rank() Rank {
	return c.rank
}

// IsNull reports whether c is the null card.
func (c Card) IsNull() bool {
	return c.suit == NoSuit || c.rank == NoRank
}

// CompareTo compares c with other.
//
// When c is the null card the comparison is unresolved and ok is false.
// Otherwise ok is true and equal reports whether both suit and rank match;
// a valid card is never equal to the null card.
func (c Card) CompareTo(other Card) (equal, ok bool) {
	if c.IsNull() {
		return false, false
	}
	return c.suit == other.suit && c.rank == other.rank, true
}

// Equal reports whether c and other are the same valid card.
func (c Card) Equal(other Card) bool {
	equal, ok := c.CompareTo(other)
	return ok && equal
}

// String returns the rank and the suit of the card, e.g. "ACE of CLUBS".
func (c Card) String() string {
	return c.rank.String() + " of " + c.suit.String()
}
