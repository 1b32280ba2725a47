package card

// Rank is the face value of a card. Its numeric value is the ordinal used
// for ordering, from 2 (Two) to 14 (Ace).
type Rank uint8

// NoRank is the rank of a null card.
const NoRank Rank = 0

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankNames = map[Rank]string{
	Two:   "TWO",
	Three: "THREE",
	Four:  "FOUR",
	Five:  "FIVE",
	Six:   "SIX",
	Seven: "SEVEN",
	Eight: "EIGHT",
	Nine:  "NINE",
	Ten:   "TEN",
	Jack:  "JACK",
	Queen: "QUEEN",
	King:  "KING",
	Ace:   "ACE",
}

// Ranks returns every rank in enumeration order, Two first and Ace last.
func Ranks() []Rank {
	out := make([]Rank, len(ranks))
	copy(out, ranks[:])
	return out
}

// ParseRank returns the rank with the given upper-case name.
func ParseRank(name string) (Rank, bool) {
	for _, r := range ranks {
		if rankNames[r] == name {
			return r, true
		}
	}
	return NoRank, false
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Ordinal returns the ordering value of r (2-14), or 0 for NoRank.
func (r Rank) Ordinal() int {
	if !r.Valid() {
		return 0
	}
	return int(r)
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "null"
}
