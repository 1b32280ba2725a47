// Package card models the cards of a standard 52-card French deck.
//
// # Core Types
//
// Rank: One of the thirteen face values, TWO through ACE. The numeric value
// of a Rank is its ordinal (2-14).
//
// Suit: One of DIAMONDS, CLUBS, HEARTS and SPADES, with ordinals 0-3.
//
// Card: An immutable (suit, rank) pair.
//
// # Enumeration Order
//
// Ranks and Suits returns the members of each enumeration in a fixed order.
// Deck construction iterates over them, so the order of a fresh deck depends
// on it.
//
// # Null Cards
//
// Construction never fails. A Card built from a component that is not an
// enumeration member is the null card, the zero value Card{}, whose getters
// report NoSuit and NoRank. The same null card is returned by a deck that has
// run out of cards.
//
// Comparing from a null card cannot be resolved: CompareTo reports ok=false
// instead of a plain "not equal".
package card
