package game

// ActionType is a per-turn right a unit can spend, or a pass in a search move.
type ActionType int

const (
	MoveAction ActionType = iota
	AttackAction
	PassAction
)

func (a ActionType) String() string {
	switch a {
	case MoveAction:
		return "Move"
	case AttackAction:
		return "Attack"
	default:
		return "Pass"
	}
}

// fullActions is the action set a unit receives at the start of a turn.
func fullActions() []ActionType {
	return []ActionType{MoveAction, AttackAction}
}
