package card

import "fmt"

// Variant is one specific card identity. The ordinal of each variant is fixed:
// ranks ascend in steps of four, suits cycle Club, Diamond, Heart, Spade within
// a rank, and the joker comes last.
type Variant uint8

const (
	OneClub Variant = iota
	OneDiamond
	OneHeart
	OneSpade
	TwoClub
	TwoDiamond
	TwoHeart
	TwoSpade
	ThreeClub
	ThreeDiamond
	ThreeHeart
	ThreeSpade
	FourClub
	FourDiamond
	FourHeart
	FourSpade
	FiveClub
	FiveDiamond
	FiveHeart
	FiveSpade
	SixClub
	SixDiamond
	SixHeart
	SixSpade
	SevenClub
	SevenDiamond
	SevenHeart
	SevenSpade
	EightClub
	EightDiamond
	EightHeart
	EightSpade
	NineClub
	NineDiamond
	NineHeart
	NineSpade
	TenClub
	TenDiamond
	TenHeart
	TenSpade
	JackClub
	JackDiamond
	JackHeart
	JackSpade
	QueenClub
	QueenDiamond
	QueenHeart
	QueenSpade
	KingClub
	KingDiamond
	KingHeart
	KingSpade
	JokerVariant
)

// NumVariants is the number of distinct card identities, joker included.
const NumVariants = int(JokerVariant) + 1

const suitsPerRank = 4

// Variants returns every variant in canonical order (ordinal 0..52).
func Variants() []Variant {
	all := make([]Variant, NumVariants)
	for i := range all {
		all[i] = Variant(i)
	}
	return all
}

// Valid reports whether v is one of the 53 known identities.
func (v Variant) Valid() bool {
	return v <= JokerVariant
}

// Value returns the rank value 1-13, or 0 for the joker and unknown variants.
func (v Variant) Value() uint8 {
	if v >= JokerVariant {
		return 0
	}
	return uint8(v)/suitsPerRank + 1
}

// Rank returns the rank of v. The boolean is false for the joker.
func (v Variant) Rank() (Rank, bool) {
	if v >= JokerVariant {
		return 0, false
	}
	return Rank(v.Value()), true
}

// Suit returns the suit of v. The boolean is false for the joker.
func (v Variant) Suit() (Suit, bool) {
	if v >= JokerVariant {
		return 0, false
	}
	return Suit(uint8(v) % suitsPerRank), true
}

func (v Variant) String() string {
	if v == JokerVariant {
		return "Joker"
	}
	rank, ok := v.Rank()
	if !ok {
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
	suit, _ := v.Suit()
	return rank.String() + suit.String()
}
