package faction

import "math/rand/v2"

// ShipClass is the hull class of a faction vessel met in the field.
type ShipClass uint8

const (
	Scout ShipClass = iota
	Fighter
	Cruiser
	Battleship
	Flagship
)

var shipClassNames = [...]string{"Scout", "Fighter", "Cruiser", "Battleship", "Flagship"}

// BaseThreat returns the class threat rating.
func (c ShipClass) BaseThreat() int {
	switch c {
	case Scout:
		return 1
	case Fighter:
		return 2
	case Cruiser:
		return 4
	case Battleship:
		return 7
	case Flagship:
		return 10
	default:
		return 0
	}
}

func (c ShipClass) String() string {
	if int(c) < len(shipClassNames) {
		return shipClassNames[c]
	}
	return "Unknown"
}

// RollEncounter picks the faction and ship class of a random vessel.
// Faction odds: Cosmicons 21%, Spirats 15%, Webes 15%, Celestials 10%,
// Spades 15%, Archs 10%, Independent 14%. Larger hulls are rarer.
func RollEncounter(rng *rand.Rand) (Faction, ShipClass) {
	var f Faction
	switch roll := rng.IntN(100); {
	case roll <= 20:
		f = Cosmicons
	case roll <= 35:
		f = Spirats
	case roll <= 50:
		f = Webes
	case roll <= 60:
		f = Celestials
	case roll <= 75:
		f = Spades
	case roll <= 85:
		f = Archs
	default:
		f = Neutral
	}

	var c ShipClass
	switch roll := rng.IntN(100); {
	case roll <= 40:
		c = Scout
	case roll <= 65:
		c = Fighter
	case roll <= 80:
		c = Cruiser
	case roll <= 95:
		c = Battleship
	default:
		c = Flagship
	}
	return f, c
}

// RandomMajor picks one of the six aligned factions uniformly.
func RandomMajor(rng *rand.Rand) Faction {
	return Major[rng.IntN(len(Major))]
}
