package card

// Suit is the category of a card. The zero value is NoSuit, so the suit of
// the null card is distinguishable from Diamonds.
type Suit uint8

const (
	NoSuit Suit = iota
	Diamonds
	Clubs
	Hearts
	Spades
)

var suits = [...]Suit{Diamonds, Clubs, Hearts, Spades}

var suitNames = map[Suit]string{
	Diamonds: "DIAMONDS",
	Clubs:    "CLUBS",
	Hearts:   "HEARTS",
	Spades:   "SPADES",
}

// Suits returns every suit in enumeration order: Diamonds, Clubs, Hearts, Spades.
func Suits() []Suit {
	out := make([]Suit, len(suits))
	copy(out, suits[:])
	return out
}

// ParseSuit returns the suit with the given upper-case name.
func ParseSuit(name string) (Suit, bool) {
	for _, s := range suits {
		if suitNames[s] == name {
			return s, true
		}
	}
	return NoSuit, false
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Diamonds && s <= Spades
}

// Ordinal returns the position of s in the enumeration (0-3), or -1 for NoSuit.
func (s Suit) Ordinal() int {
	if !s.Valid() {
		return -1
	}
	return int(s) - 1
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return "null"
}
