package model

// PersonInfo is the serializable snapshot of a person: the shape carried in
// a scenario's initial population, a padding-channel exchange, and a trace
// entry.
type PersonInfo struct {
	Name           string         `json:"name"`
	Position       XY             `json:"pos"`
	Seed           []byte         `json:"rngState"`
	InfectionState InfectionState `json:"infectionState"`
	Direction      Direction      `json:"direction"`
}
