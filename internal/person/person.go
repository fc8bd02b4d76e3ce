// Package person implements the movement, breathing/coughing roll, and
// infection state machine for a single simulated inhabitant of the grid.
// spec.md treats this behavior as an external collaborator; this package
// supplies the concrete rule so the module is runnable end to end.
package person

import (
	"crypto/sha256"

	"spreadsim/internal/model"
)

// ID uniquely identifies a person for the lifetime of a run.
type ID int

// Person is one simulated inhabitant: its position, heading, infection
// state, and digest-based RNG.
type Person struct {
	ID         ID
	Name       string
	Parameters model.Parameters
	Position   model.XY
	Direction  model.Direction
	state      model.State
	digest     [sha256.Size]byte
}

// New builds a Person from its scenario-supplied snapshot.
func New(id ID, info model.PersonInfo, parameters model.Parameters) Person {
	p := Person{
		ID:         id,
		Name:       info.Name,
		Parameters: parameters,
		Position:   info.Position,
		Direction:  info.Direction,
		state:      model.State{Compartment: info.InfectionState},
	}
	copy(p.digest[:], info.Seed)
	return p
}

// State returns the person's current SI²R compartment and ticks spent in it.
func (p Person) State() model.State { return p.state }

func (p Person) IsSusceptible() bool { return p.state.IsSusceptible() }
func (p Person) IsInfected() bool    { return p.state.IsInfected() }
func (p Person) IsInfectious() bool  { return p.state.IsInfectious() }
func (p Person) IsRecovered() bool   { return p.state.IsRecovered() }

// IsCoughing reports the outcome of the current tick's coughing roll.
func (p Person) IsCoughing() bool {
	return int(p.digest[0]) < p.Parameters.CoughThreshold
}

// IsBreathing reports the outcome of the current tick's breathing roll.
func (p Person) IsBreathing() bool {
	return int(p.digest[1]) < p.Parameters.BreathThreshold
}

func (p Person) acceleration() model.Direction {
	return model.DirectionFromIndex(int(p.digest[2]) / p.Parameters.AccelerationDivisor)
}

// Infect transitions a susceptible person to Infected; a no-op otherwise, so
// two infectious neighbors landing on the same susceptible person in one
// tick don't double-infect them.
func (p *Person) Infect() {
	p.state = p.state.Infect()
}

// Info returns the serializable snapshot of the person, used for padding
// exchanges and trace entries.
func (p Person) Info() model.PersonInfo {
	return model.PersonInfo{
		Name:           p.Name,
		Position:       p.Position,
		Seed:           append([]byte(nil), p.digest[:]...),
		InfectionState: p.state.Compartment,
		Direction:      p.Direction,
	}
}

// BustGhost finalizes an already-computed position/direction against a
// tick's ghost set. This port resolves collisions synchronously inside
// Tick, so there is no deferred step to finalize; the method is kept so the
// patch worker's local tick can call it unconditionally.
func (p *Person) BustGhost() {}

// Tick advances the person's RNG, infection state, and position by one
// simulated tick. positions (the current cells of every person in the
// tick) and ghosts (the cells persons processed earlier in the tick started
// from) are the cells a move must not land on.
func (p *Person) Tick(grid model.Rectangle, obstacles []model.Rectangle, positions, ghosts []model.XY) {
	p.digest = sha256.Sum256(p.digest[:])
	p.state = p.state.Advance(p.Parameters.IncubationTime, p.Parameters.RecoveryTime)

	acceleration := p.acceleration().Vector()
	heading := p.Direction.Vector()
	velocity := heading.Add(acceleration).Limit(-1, 1)
	candidate := p.Position.Add(velocity)

	if !model.Contains(grid, candidate) {
		p.Direction = model.NoDirection
		return
	}
	for _, o := range obstacles {
		if model.Contains(o, candidate) {
			p.Direction = model.NoDirection
			return
		}
	}
	for _, occupied := range positions {
		if occupied == candidate {
			p.Direction = model.NoDirection
			return
		}
	}
	for _, ghost := range ghosts {
		if ghost == candidate {
			p.Direction = model.NoDirection
			return
		}
	}

	p.Direction = model.DirectionFromVector(velocity)
	p.Position = candidate
}
