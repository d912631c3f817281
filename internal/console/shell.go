package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mpsalisbury/cardcollection/pkg/cards"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
	errQuit           = errors.New("quit")
)

const helpText = `Commands:
  add <card>       add a card, e.g. "add Ace of Spades", "add Ace Spades", "add as"
  find <suit>      list cards of a suit
  list             list all cards
  suits            count the cards held in each suit
  remove <card>    remove a card
  help             show this help
  quit             leave the shell`

// Exec runs a single command line. Blank lines are ignored.
func (c *Console) Exec(line string) error {
	verb, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)
	switch strings.ToLower(verb) {
	case "":
		return nil
	case "add":
		card, err := cardArg(rest)
		if err != nil {
			return fmt.Errorf("add: %w", err)
		}
		c.AddCard(card.Rank, card.Suit)
	case "find":
		if rest == "" {
			return fmt.Errorf("%w: find <suit>", ErrUsage)
		}
		c.FindCardsBySuit(cards.Suit(rest))
	case "list":
		c.DisplayAllCards()
	case "suits":
		c.DisplaySuits()
	case "remove":
		card, err := cardArg(rest)
		if err != nil {
			return fmt.Errorf("remove: %w", err)
		}
		c.RemoveCard(card.Rank, card.Suit)
	case "help":
		fmt.Fprintln(c.out, helpText)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("%w '%s'", ErrUnknownCommand, verb)
	}
	return nil
}

// cardArg reads "<rank> of <suit>", shorthand like "kh", or "<rank> <suit>".
// In the last form a one letter suit is shorthand too, so "2 h" is the two
// of Hearts.
func cardArg(arg string) (cards.Card, error) {
	if arg == "" {
		return cards.Card{}, fmt.Errorf("%w: <rank> <suit>", ErrUsage)
	}
	if card, err := cards.ParseCard(arg); err == nil {
		return card, nil
	}
	fields := strings.Fields(arg)
	if len(fields) != 2 || strings.EqualFold(fields[0], "of") || strings.EqualFold(fields[1], "of") {
		return cards.Card{}, fmt.Errorf("%w: can't parse card '%s'", ErrUsage, arg)
	}
	if len(fields[1]) == 1 {
		card, err := cards.ParseCard(fields[0] + fields[1])
		if err != nil {
			return cards.Card{}, fmt.Errorf("%w: %v", ErrUsage, err)
		}
		return card, nil
	}
	return cards.New(cards.Rank(fields[0]), cards.Suit(fields[1])), nil
}

// Run executes commands read from in until EOF, a quit command or ctx is
// done. Command errors are reported and do not stop the loop.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	reader := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.prompt != "" {
			fmt.Fprint(c.out, c.prompt)
		}
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return readErr
		}
		if readErr == io.EOF && line == "" {
			// end the prompt line
			if c.prompt != "" {
				fmt.Fprintln(c.out)
			}
			return nil
		}
		err := c.Exec(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			c.logger.Printf("command %q: %v", strings.TrimSpace(line), err)
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
		if readErr == io.EOF {
			return nil
		}
	}
}
