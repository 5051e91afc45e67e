package components

import (
	"github.com/yohamta/donburi"
)

// Facing is the horizontal direction an actor looks in.
type Facing int

const (
	FacingLeft Facing = iota
	FacingRight
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Sign returns -1 for left and 1 for right.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// Stance is the attack height chosen by the vertical intents of a tick.
type Stance int

const (
	StanceNormal Stance = iota
	StanceLow
	StanceHigh
)

func (s Stance) String() string {
	switch s {
	case StanceLow:
		return "low"
	case StanceHigh:
		return "high"
	}
	return "normal"
}

type PlayerData struct {
	Name   string
	Facing Facing
	Stance Stance

	// Where a level reset puts the player back.
	SpawnX, SpawnY float64
}

var Player = donburi.NewComponentType[PlayerData]()
