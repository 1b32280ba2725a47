package card

import "testing"

func TestNewCardAllValid(t *testing.T) {
	count := 0
	for _, s := range Suits() {
		for _, r := range Ranks() {
			c := New(s, r)
			if c.IsNull() {
				t.Fatalf("expected a valid card for %v, %v", s, r)
			}
			if c.Suit() != s {
				t.Fatalf("expected suit %v, got %v", s, c.Suit())
			}
			if c.Rank() != r {
				t.Fatalf("expected rank %v, got %v", r, c.Rank())
			}
			count++
		}
	}
	if count != 52 {
		t.Fatalf("expected 52 cards, got %d", count)
	}
}

func TestNewCardInvalid(t *testing.T) {
	cases := []struct {
		name string
		suit Suit
		rank Rank
	}{
		{"both unset", NoSuit, NoRank},
		{"suit unset", NoSuit, Queen},
		{"rank unset", Spades, NoRank},
		{"suit out of range", Suit(9), Ace},
		{"rank out of range", Hearts, Rank(15)},
		{"rank one", Clubs, Rank(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(tc.suit, tc.rank)
			if c.Suit() != NoSuit {
				t.Errorf("expected NoSuit, got %v", c.Suit())
			}
			if c.Rank() != NoRank {
				t.Errorf("expected NoRank, got %v", c.Rank())
			}
			if !c.IsNull() {
				t.Error("expected the null card")
			}
		})
	}
}

func TestParseCard(t *testing.T) {
	c := Parse("SPADES", "ACE")
	if c.Suit() != Spades || c.Rank() != Ace {
		t.Fatalf("expected ACE of SPADES, got %s", c)
	}

	for _, names := range [][2]string{
		{"FIFA", "2018"},
		{"SPADES", ""},
		{"", "QUEEN"},
		{"spades", "ace"},
	} {
		c := Parse(names[0], names[1])
		if !c.IsNull() {
			t.Errorf("Parse(%q, %q): expected the null card, got %s", names[0], names[1], c)
		}
	}
}

func TestCompareTo(t *testing.T) {
	a := New(Diamonds, Two)
	b := New(Diamonds, Two)
	c := New(Diamonds, Three)
	d := New(Clubs, Two)
	null := New(NoSuit, NoRank)

	if equal, ok := a.CompareTo(b); !ok || !equal {
		t.Errorf("expected equal, got equal=%v ok=%v", equal, ok)
	}
	if equal, ok := a.CompareTo(c); !ok || equal {
		t.Errorf("expected different rank to be unequal, got equal=%v ok=%v", equal, ok)
	}
	if equal, ok := a.CompareTo(d); !ok || equal {
		t.Errorf("expected different suit to be unequal, got equal=%v ok=%v", equal, ok)
	}
	if equal, ok := a.CompareTo(null); !ok || equal {
		t.Errorf("expected valid vs null to be unequal, got equal=%v ok=%v", equal, ok)
	}
	if _, ok := null.CompareTo(a); ok {
		t.Error("expected comparison from the null card to be unresolved")
	}
	if _, ok := null.CompareTo(null); ok {
		t.Error("expected comparison between null cards to be unresolved")
	}
	if null.Equal(null) {
		t.Error("null cards must not be Equal")
	}
	if !a.Equal(b) {
		t.Error("expected a.Equal(b)")
	}
}

func TestEnumerationSizes(t *testing.T) {
	if len(Suits()) != 4 {
		t.Fatalf("expected 4 suits, got %d", len(Suits()))
	}
	if len(Ranks()) != 13 {
		t.Fatalf("expected 13 ranks, got %d", len(Ranks()))
	}
}

func TestEnumerationOrder(t *testing.T) {
	expectedSuits := []string{"DIAMONDS", "CLUBS", "HEARTS", "SPADES"}
	for i, s := range Suits() {
		if s.String() != expectedSuits[i] {
			t.Errorf("suit %d: expected %s, got %s", i, expectedSuits[i], s)
		}
		if s.Ordinal() != i {
			t.Errorf("suit %s: expected ordinal %d, got %d", s, i, s.Ordinal())
		}
	}
	for i, r := range Ranks() {
		if r.Ordinal() != i+2 {
			t.Errorf("rank %s: expected ordinal %d, got %d", r, i+2, r.Ordinal())
		}
	}
	if Ranks()[0] != Two || Ranks()[12] != Ace {
		t.Errorf("unexpected rank order %v", Ranks())
	}
}

func TestRanksReturnsCopy(t *testing.T) {
	r := Ranks()
	r[0] = Ace
	if Ranks()[0] != Two {
		t.Fatal("mutating the result of Ranks changed the enumeration")
	}
}

func TestCardString(t *testing.T) {
	c := New(Clubs, Ace)
	if c.String() != "ACE of CLUBS" {
		t.Fatalf("expected ACE of CLUBS, got %s", c.String())
	}
	c = New(Hearts, Ten)
	if c.String() != "TEN of HEARTS" {
		t.Fatalf("expected TEN of HEARTS, got %s", c.String())
	}
	if (Card{}).String() != "null of null" {
		t.Fatalf("expected null of null, got %s", (Card{}).String())
	}
}
