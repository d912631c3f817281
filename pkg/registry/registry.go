// Package registry keeps a collection of unique playing cards, indexed by
// insertion order and by suit.
package registry

import (
	"errors"
	"iter"

	"github.com/mpsalisbury/cardcollection/pkg/cards"
	"golang.org/x/exp/slices"
)

var (
	ErrDuplicate = errors.New("card already exists")
	ErrNotFound  = errors.New("card not found")
)

// CardError reports an add or remove that left the registry unchanged.
type CardError struct {
	Card cards.Card
	Err  error
}

func (e *CardError) Error() string {
	return e.Card.String() + ": " + e.Err.Error()
}

func (e *CardError) Unwrap() error {
	return e.Err
}

// Registry holds cards in insertion order, with a key set to reject
// duplicates and a per-suit index for lookup.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	cards  cards.Cards
	keys   map[cards.Key]struct{}
	bySuit map[cards.Suit]cards.Cards

	// suits in order of first insertion, for listing
	suits []cards.Suit
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		keys:   make(map[cards.Key]struct{}),
		bySuit: make(map[cards.Suit]cards.Cards),
	}
}

// Add stores the card (rank, suit). If an equal card is already present the
// registry is left untouched and a *CardError wrapping ErrDuplicate is
// returned.
func (r *Registry) Add(rank cards.Rank, suit cards.Suit) (cards.Card, error) {
	c := cards.New(rank, suit)
	if _, ok := r.keys[c.Key()]; ok {
		return c, &CardError{c, ErrDuplicate}
	}
	r.cards = append(r.cards, c)
	r.keys[c.Key()] = struct{}{}
	if _, ok := r.bySuit[suit]; !ok {
		r.suits = append(r.suits, suit)
	}
	r.bySuit[suit] = append(r.bySuit[suit], c)
	return c, nil
}

// FindBySuit yields the cards of the given suit in insertion order. The
// sequence may be ranged over more than once; each pass reflects the
// registry's contents at that time. Do not modify the registry mid-pass.
func (r *Registry) FindBySuit(suit cards.Suit) iter.Seq[cards.Card] {
	return func(yield func(cards.Card) bool) {
		for _, c := range r.bySuit[suit] {
			if !yield(c) {
				return
			}
		}
	}
}

// All returns a copy of every card in insertion order. ok is false when the
// registry is empty.
func (r *Registry) All() (cs cards.Cards, ok bool) {
	if len(r.cards) == 0 {
		return nil, false
	}
	return r.cards.Copy(), true
}

// Remove deletes the card (rank, suit) from every index. A missing card
// returns a *CardError wrapping ErrNotFound.
func (r *Registry) Remove(rank cards.Rank, suit cards.Suit) (cards.Card, error) {
	c := cards.New(rank, suit)
	i := slices.Index(r.cards, c)
	if i < 0 {
		return c, &CardError{c, ErrNotFound}
	}
	r.cards = slices.Delete(r.cards, i, i+1)
	delete(r.keys, c.Key())
	remaining := r.bySuit[suit].Remove(c)
	if len(remaining) == 0 {
		delete(r.bySuit, suit)
		r.suits = slices.DeleteFunc(r.suits, func(s cards.Suit) bool { return s == suit })
	} else {
		r.bySuit[suit] = remaining
	}
	return c, nil
}

func (r *Registry) Len() int {
	return len(r.cards)
}

// Contains reports whether the card (rank, suit) is held.
func (r *Registry) Contains(rank cards.Rank, suit cards.Suit) bool {
	_, ok := r.keys[cards.Key{Rank: rank, Suit: suit}]
	return ok
}

func (r *Registry) CountBySuit(suit cards.Suit) int {
	return len(r.bySuit[suit])
}

// Suits lists the suits that currently hold cards, in the order each was
// first added.
func (r *Registry) Suits() []cards.Suit {
	return slices.Clone(r.suits)
}
