// Package console prints the outcome of card registry operations the way a
// user reads them, and interprets typed commands against a registry.
package console

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/mpsalisbury/cardcollection/pkg/cards"
	"github.com/mpsalisbury/cardcollection/pkg/registry"
)

// Console reports registry operations to out.
type Console struct {
	reg    *registry.Registry
	out    io.Writer
	logger *log.Logger
	prompt string
}

type Option func(*Console)

// WithLogger sends diagnostic messages to l instead of discarding them.
func WithLogger(l *log.Logger) Option {
	return func(c *Console) { c.logger = l }
}

// WithPrompt sets the prompt Run prints before reading each line.
func WithPrompt(p string) Option {
	return func(c *Console) { c.prompt = p }
}

func New(reg *registry.Registry, out io.Writer, opts ...Option) *Console {
	c := &Console{
		reg:    reg,
		out:    out,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Console) AddCard(rank cards.Rank, suit cards.Suit) {
	card, err := c.reg.Add(rank, suit)
	switch {
	case errors.Is(err, registry.ErrDuplicate):
		fmt.Fprintf(c.out, "Error: Card \"%s\" already exists.\n", card)
	case err != nil:
		fmt.Fprintf(c.out, "Error: %v\n", err)
	default:
		c.logger.Printf("added %s, %d cards held", card, c.reg.Len())
		fmt.Fprintf(c.out, "Card added: %s\n", card)
	}
}

func (c *Console) FindCardsBySuit(suit cards.Suit) {
	found := false
	for card := range c.reg.FindBySuit(suit) {
		found = true
		fmt.Fprintln(c.out, card)
	}
	if !found {
		fmt.Fprintf(c.out, "No cards found for %s.\n", suit)
	}
}

func (c *Console) DisplayAllCards() {
	all, ok := c.reg.All()
	if !ok {
		fmt.Fprintln(c.out, "No cards found.")
		return
	}
	fmt.Fprintln(c.out, all)
}

// DisplaySuits prints how many cards each held suit has, in the order the
// suits were first added.
func (c *Console) DisplaySuits() {
	suits := c.reg.Suits()
	if len(suits) == 0 {
		fmt.Fprintln(c.out, "No cards found.")
		return
	}
	for _, s := range suits {
		fmt.Fprintf(c.out, "%s: %d\n", s, c.reg.CountBySuit(s))
	}
}

func (c *Console) RemoveCard(rank cards.Rank, suit cards.Suit) {
	card, err := c.reg.Remove(rank, suit)
	switch {
	case errors.Is(err, registry.ErrNotFound):
		fmt.Fprintf(c.out, "Error: Card \"%s\" not found.\n", card)
	case err != nil:
		fmt.Fprintf(c.out, "Error: %v\n", err)
	default:
		c.logger.Printf("removed %s, %d cards held", card, c.reg.Len())
		fmt.Fprintf(c.out, "Card removed: %s\n", card)
	}
}

// Demo replays the card collection walkthrough against a fresh registry.
func Demo(out io.Writer, opts ...Option) {
	c := New(registry.New(), out, opts...)

	fmt.Fprintln(out, "Test Case 1: Display All Cards")
	c.DisplayAllCards()

	fmt.Fprintln(out, "\nTest Case 2: Adding Cards")
	c.AddCard(cards.Ace, cards.Spades)
	c.AddCard(cards.King, cards.Hearts)
	c.AddCard(cards.Ten, cards.Diamonds)
	c.AddCard(cards.Five, cards.Clubs)

	fmt.Fprintln(out, "\nTest Case 3: Finding Cards by Suit")
	c.FindCardsBySuit(cards.Hearts)

	fmt.Fprintln(out, "\nTest Case 4: Searching Suit with No Cards")
	c.FindCardsBySuit(cards.Diamonds)

	fmt.Fprintln(out, "\nTest Case 5: Displaying All Cards")
	c.DisplayAllCards()

	fmt.Fprintln(out, "\nTest Case 6: Preventing Duplicate Cards")
	c.AddCard(cards.King, cards.Hearts)

	fmt.Fprintln(out, "\nTest Case 7: Removing a Card")
	c.RemoveCard(cards.Ten, cards.Diamonds)

	fmt.Fprintln(out, "\nDisplaying All Cards After Removal")
	c.DisplayAllCards()
}
