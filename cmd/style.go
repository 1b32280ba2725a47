package main

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/card-dealer/domain/card"
	"github.com/luca-patrignani/card-dealer/domain/dealer"
)

// panelsPerRow is the number of player boxes printed side by side.
const panelsPerRow = 4

func suitSymbol(s card.Suit) string {
	switch s {
	case card.Clubs:
		return pterm.Black("♣")
	case card.Diamonds:
		return pterm.LightRed("♦")
	case card.Hearts:
		return pterm.LightRed("♥")
	case card.Spades:
		return pterm.Black("♠")
	default:
		return "?"
	}
}

func rankLabel(r card.Rank) string {
	switch r {
	case card.Ace:
		return "A"
	case card.King:
		return "K"
	case card.Queen:
		return "Q"
	case card.Jack:
		return "J"
	default:
		return strconv.Itoa(r.Ordinal())
	}
}

// cardLabel renders a card in short form, e.g. "A♠".
func cardLabel(c card.Card) string {
	if c.IsNull() {
		return "▓"
	}
	return rankLabel(c.Rank()) + suitSymbol(c.Suit())
}

func cardsLabel(cards []card.Card) string {
	if len(cards) == 0 {
		return "-"
	}
	labels := make([]string, len(cards))
	for i, c := range cards {
		labels[i] = cardLabel(c)
	}
	return strings.Join(labels, " ")
}

func printBox(title string, cards []card.Card) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(title).WithTitleTopLeft().Sprintf("%s\nCards: %d", cardsLabel(cards), len(cards))
}

// dealPanels lays out one box per player, panelsPerRow per row, followed by
// a row holding the unused pile.
func dealPanels(dl *dealer.Dealer) ([][]pterm.Panel, error) {
	var rows [][]pterm.Panel
	var row []pterm.Panel
	for p := 1; p <= dl.Players(); p++ {
		hand, err := dl.Hand(p)
		if err != nil {
			return nil, err
		}
		title := pterm.LightCyan("Player " + strconv.Itoa(p))
		row = append(row, pterm.Panel{Data: printBox(title, hand)})
		if len(row) == panelsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	unused := pterm.Panel{Data: printBox(pterm.LightYellow("|UNUSED|"), dl.Unused())}
	return append(rows, []pterm.Panel{unused}), nil
}
