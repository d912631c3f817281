package cards

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Cards is an ordered run of cards.
type Cards []Card

func (cs Cards) Copy() Cards {
	cardsCopy := make([]Card, len(cs))
	copy(cardsCopy, cs)
	return cardsCopy
}

// Remove drops the first occurrence of c, reusing cs's backing array.
func (cs Cards) Remove(c Card) Cards {
	i := slices.Index(cs, c)
	if i < 0 {
		return cs
	}
	return slices.Delete(cs, i, i+1)
}

func (cs Cards) Strings() []string {
	cardStrings := []string{}
	for _, c := range cs {
		cardStrings = append(cardStrings, c.String())
	}
	return cardStrings
}

// String lists one card per line.
func (cs Cards) String() string {
	return strings.Join(cs.Strings(), "\n")
}

func ParseCards(cs []string) (Cards, error) {
	var cards Cards
	for _, c := range cs {
		card, err := ParseCard(c)
		if err != nil {
			return Cards{}, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
