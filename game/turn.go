package game

// EndTurn pays the ally, refreshes every unit, advances capture progress and
// checks for a winner, which it returns (Neutral while undecided).
func (gs *GameState) EndTurn() (Team, error) {
	if gs.Won != Neutral {
		return gs.Won, ErrGameOver
	}

	gs.AllyCoins += gs.Income()

	for i := range gs.Units {
		gs.Units[i].refresh()
	}

	gs.advanceCapture()
	gs.Turn++

	return gs.checkWinner(), nil
}

// Income is what the ally will be paid at the end of the current turn.
func (gs *GameState) Income() int {
	return gs.Board.CountOwned(Ally)*gs.Rules.Economy.TileIncome + gs.Rules.Economy.Stipend
}
