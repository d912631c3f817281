package cards

import "testing"

func TestParseValidCard(t *testing.T) {
	tests := []struct {
		c    string
		want Card
	}{
		{"Ace of Spades", Card{Ace, Spades}},
		{"King of Hearts", Card{King, Hearts}},
		{"10 of Diamonds", Card{Ten, Diamonds}},
		{"  5 of Clubs ", Card{Five, Clubs}},
		{"Joker of Stars", Card{"Joker", "Stars"}},
		{"2c", Card{Two, Clubs}},
		{"9c", Card{Nine, Clubs}},
		{"tc", Card{Ten, Clubs}},
		{"10d", Card{Ten, Diamonds}},
		{"jc", Card{Jack, Clubs}},
		{"qc", Card{Queen, Clubs}},
		{"kh", Card{King, Hearts}},
		{"AS", Card{Ace, Spades}},
	}
	for _, tc := range tests {
		got, err := ParseCard(tc.c)
		if err != nil {
			t.Errorf("ParseCard(%s)=error(%s), want %s", tc.c, err, tc.want)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCard(%s)=%s, want %s", tc.c, got, tc.want)
		}
	}
}

func TestParseInvalidCard(t *testing.T) {
	tests := []string{"xc", "7x", "2cc", "22c", "", "5", " of Spades", "Ace of ", "1000s"}
	for _, tc := range tests {
		got, err := ParseCard(tc)
		if err == nil {
			t.Errorf("ParseCard(%s)=%s, want err", tc, got)
		}
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		c    Card
		want string
	}{
		{AceOfSpades, "Ace of Spades"},
		{KingOfHearts, "King of Hearts"},
		{TenOfDiamonds, "10 of Diamonds"},
		{FiveOfClubs, "5 of Clubs"},
	}
	for _, tc := range tests {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("%#v.String()=%s, want %s", tc.c, got, tc.want)
		}
	}
}

func TestKeyDoesNotCollideOnSeparator(t *testing.T) {
	a := New("A of", "B")
	b := New("A", "of B")
	if a.String() != b.String() {
		t.Fatalf("expected identical rendering, got %q and %q", a, b)
	}
	if a.Key() == b.Key() {
		t.Errorf("Key(%#v) == Key(%#v), want distinct", a, b)
	}
}
