// Package deck implements a standard 52-card deck used as a stack.
//
// # Lifecycle
//
// A Deck is either populated or empty. New builds a populated deck in a
// fixed order; Deal pops cards from the top until the deck is empty, after
// which Deal keeps returning the null card instead of failing. Clear empties
// the deck at once.
//
// # Shuffling
//
// Shuffle permutes the cards in place with the Fisher-Yates algorithm. The
// random draws come from a random.Source chosen with WithSource, which makes
// shuffles reproducible in tests and lets callers pick a cryptographic
// stream when fairness matters.
//
// A Deck has a single owner and is not safe for concurrent use.
package deck
