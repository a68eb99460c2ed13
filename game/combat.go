package game

// Combat reports how an attack resolved.
type Combat struct {
	Attacker       UnitID
	Defender       UnitID
	Damage         int  // dealt to the defender after armor
	Killed         bool // defender destroyed
	StruckBack     int  // dealt to the attacker after armor, 0 without a strike back
	AttackerKilled bool
	ActionSpent    bool // attacker lost its attack action
	Advanced       bool // attacker moved into the defender's tile
}

// attack resolves attacker hitting defender. Both indexes point into gs.Units;
// destroyed units are removed before returning.
func (gs *GameState) attack(ai, di int) Combat {
	a := &gs.Units[ai]
	d := &gs.Units[di]
	c := Combat{Attacker: a.ID, Defender: d.ID}

	before := d.Health
	c.Killed = d.takeDamage(a.Damage)
	c.Damage = before - d.Health

	if !(c.Killed && a.Has(Executioner)) && !d.Has(Despised) {
		a.consume(AttackAction)
		c.ActionSpent = true
	}

	// no counter-strike back
	if !c.Killed && d.Has(StrikeBack) {
		before = a.Health
		c.AttackerKilled = a.takeDamage(d.Damage)
		c.StruckBack = before - a.Health
	}

	if c.Killed && a.Has(Nimble) {
		a.Pos = d.Pos
		c.Advanced = true
	}

	gs.removeDead()
	return c
}
