package cards

// Card literals
var (
	AceOfSpades   = Card{Rank: Ace, Suit: Spades}
	KingOfHearts  = Card{Rank: King, Suit: Hearts}
	QueenOfHearts = Card{Rank: Queen, Suit: Hearts}
	TenOfDiamonds = Card{Rank: Ten, Suit: Diamonds}
	FiveOfClubs   = Card{Rank: Five, Suit: Clubs}
	TwoOfClubs    = Card{Rank: Two, Suit: Clubs}
)
