package cards

import (
	"fmt"
	"strings"
)

// A card's suit, e.g. "Spades".
type Suit string

const (
	Spades   Suit = "Spades"
	Hearts   Suit = "Hearts"
	Diamonds Suit = "Diamonds"
	Clubs    Suit = "Clubs"
)

// Suits lists the four standard suits.
var Suits = []Suit{
	Spades,
	Hearts,
	Diamonds,
	Clubs,
}

func (s Suit) String() string {
	return string(s)
}

func parseSuit(s string) (Suit, error) {
	switch strings.ToLower(s) {
	case "s", "spades":
		return Spades, nil
	case "h", "hearts":
		return Hearts, nil
	case "d", "diamonds":
		return Diamonds, nil
	case "c", "clubs":
		return Clubs, nil
	}
	return "", fmt.Errorf("no such suit '%s'", s)
}

// A card's rank: 2-10,Jack,Queen,King,Ace.
type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "Jack"
	Queen Rank = "Queen"
	King  Rank = "King"
	Ace   Rank = "Ace"
)

// Ranks lists the standard ranks, lowest first.
var Ranks = []Rank{
	Two,
	Three,
	Four,
	Five,
	Six,
	Seven,
	Eight,
	Nine,
	Ten,
	Jack,
	Queen,
	King,
	Ace,
}

func (r Rank) String() string {
	return string(r)
}

func parseRank(r string) (Rank, error) {
	switch strings.ToLower(r) {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "t", "10":
		return Ten, nil
	case "j":
		return Jack, nil
	case "q":
		return Queen, nil
	case "k":
		return King, nil
	case "a":
		return Ace, nil
	}
	return "", fmt.Errorf("no such rank '%s'", r)
}

// Card is an immutable (rank, suit) pair. Two cards with the same rank and
// suit are the same card.
type Card struct {
	Rank
	Suit
}

// New returns the card (r, s). Any rank and suit strings are accepted.
func New(r Rank, s Suit) Card {
	return Card{r, s}
}

func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

// Key identifies a card in a collection.
type Key struct {
	Rank Rank
	Suit Suit
}

func (c Card) Key() Key {
	return Key{c.Rank, c.Suit}
}

// ParseCard reads either the long form "King of Hearts" or the shorthand
// "kh", "10d", "Td". Long form ranks and suits are taken verbatim.
func ParseCard(c string) (Card, error) {
	c = strings.TrimSpace(c)
	if r, s, ok := strings.Cut(c, " of "); ok {
		r, s = strings.TrimSpace(r), strings.TrimSpace(s)
		if r == "" || s == "" {
			return Card{}, fmt.Errorf("can't parse card '%s'", c)
		}
		return Card{Rank(r), Suit(s)}, nil
	}
	if len(c) < 2 || len(c) > 3 {
		return Card{}, fmt.Errorf("can't parse card '%s'", c)
	}
	split := len(c) - 1
	r, rerr := parseRank(c[:split])
	s, serr := parseSuit(c[split:])
	if rerr != nil || serr != nil {
		return Card{}, fmt.Errorf("can't parse card '%s'", c)
	}
	return Card{r, s}, nil
}

