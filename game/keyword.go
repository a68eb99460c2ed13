package game

import "fmt"

type KeywordKind int

const (
	// Armor subtracts Amount from every hit taken, floored at zero.
	Armor KeywordKind = iota
	// Regeneration heals Amount at the start of every turn, capped at max health.
	Regeneration
	// StrikeBack deals full damage back to an attacker that failed to kill.
	StrikeBack
	// Nimble moves the attacker into the victim's tile on a kill.
	Nimble
	// Executioner keeps the attack action after a kill.
	Executioner
	// Slow locks a unit that moved out of its actions until a countdown elapses.
	Slow
	// Despised units do not cost the attacker its attack action.
	Despised
)

func (k KeywordKind) String() string {
	switch k {
	case Armor:
		return "Armor"
	case Regeneration:
		return "Regeneration"
	case StrikeBack:
		return "StrikeBack"
	case Nimble:
		return "Nimble"
	case Executioner:
		return "Executioner"
	case Slow:
		return "Slow"
	case Despised:
		return "Despised"
	}
	return fmt.Sprintf("KeywordKind(%d)", int(k))
}

// Keyword is a tagged modifier. Amount is used by Armor and Regeneration;
// Max and Countdown by Slow.
type Keyword struct {
	Kind      KeywordKind `json:"kind"`
	Amount    int         `json:"amount,omitempty"`
	Max       int         `json:"max,omitempty"`
	Countdown int         `json:"countdown,omitempty"`
}

func ArmorOf(n int) Keyword {
	return Keyword{Kind: Armor, Amount: n}
}

func RegenerationOf(n int) Keyword {
	return Keyword{Kind: Regeneration, Amount: n}
}

// SlowOf returns a Slow keyword with a full countdown.
func SlowOf(max int) Keyword {
	return Keyword{Kind: Slow, Max: max, Countdown: max}
}

func Flag(kind KeywordKind) Keyword {
	return Keyword{Kind: kind}
}

func (k Keyword) String() string {
	switch k.Kind {
	case Armor, Regeneration:
		return fmt.Sprintf("%s(%d)", k.Kind, k.Amount)
	case Slow:
		return fmt.Sprintf("Slow{max=%d, cur=%d}", k.Max, k.Countdown)
	}
	return k.Kind.String()
}
