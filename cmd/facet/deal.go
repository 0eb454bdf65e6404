package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"

	"facet/fields"
	"facet/numutil"
	"facet/sliceutil"
)

// Card is the demo element type. Ranks run 2 through 14, with 11 and up
// standing for jack, queen, king, and ace.
type Card struct {
	Rank int
	Suit string
}

var (
	rank = fields.Of(func(c *Card) *int { return &c.Rank })
	suit = fields.Of(func(c *Card) *string { return &c.Suit })
)

var suits = []string{"clubs", "diamonds", "hearts", "spades"}

func newDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, s := range suits {
		for r := 2; r <= 14; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

var faceNames = map[int]string{11: "jack", 12: "queen", 13: "king", 14: "ace"}

func cardName(c Card) string {
	name, ok := faceNames[c.Rank]
	if !ok {
		name = strconv.Itoa(c.Rank)
	}
	return name + " of " + c.Suit
}

type dealCmd struct {
	Hands      int    `help:"Number of hands to deal." default:"4"`
	Suit       string `help:"Keep only cards of this suit." enum:"all,clubs,diamonds,hearts,spades" default:"all"`
	MinRank    int    `help:"Discard cards below this rank." default:"2"`
	Buff       int    `help:"Raise every remaining rank by this amount." default:"0"`
	ForceEqual bool   `help:"Force equally sized hands, dropping leftover cards."`
	Dump       bool   `help:"Dump the dealt hands as Go structs."`
}

func (c *dealCmd) Run() error {
	deck := newDeck()
	colorCyan("dealing from a deck of %s cards\n", humanize.Comma(int64(len(deck))))

	if c.Suit != "all" {
		var removed int
		deck, removed = fields.FilterEqInPlace(deck, suit, c.Suit)
		colorYellow("kept %s, removed %s cards of other suits\n",
			pluralCards(len(deck)), humanize.Comma(int64(removed)))
	}

	if c.MinRank > 2 {
		var removed int
		deck, removed = fields.RejectCmpInPlace(deck, rank, c.MinRank,
			func(r, floor int) bool { return r < floor })
		colorYellow("discarded %s below rank %d\n", pluralCards(removed), c.MinRank)
	}

	if len(deck) == 0 {
		return errors.New("no cards left to deal")
	}

	colorGreen("average rank %.2f across %s\n",
		numutil.Average(fields.Extract(deck, rank)), pluralCards(len(deck)))

	if c.Buff != 0 {
		for _, l := range fields.ExtractLinked(deck, rank) {
			l.SetValue(l.Value() + c.Buff)
			l.Commit()
		}
		colorGreen("buffed every rank by %d, average now %.2f\n",
			c.Buff, numutil.Average(fields.Extract(deck, rank)))
	}

	hands := sliceutil.Distribute(deck, c.Hands, c.ForceEqual)
	for i, hand := range hands {
		names := make([]string, 0, len(hand))
		for _, card := range hand {
			names = append(names, cardName(card))
		}
		colorCyan("hand %d (%s): ", i+1, pluralCards(len(hand)))
		fmt.Println(strings.Join(names, ", "))
	}

	if c.Dump {
		fmt.Print(spew.Sdump(hands))
	}
	return nil
}

func pluralCards(n int) string {
	if n == 1 {
		return "1 card"
	}
	return humanize.Comma(int64(n)) + " cards"
}
