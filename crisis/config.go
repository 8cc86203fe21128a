package crisis

import "fmt"

type Config struct {
	// Occupancy
	MaxPlayers int

	// Failure threshold for the shared pressure counter.
	MaxPressure int

	// Pressure added when a full round ends with the crisis unresolved.
	// Individual mismatched plays carry no immediate penalty; the team is
	// punished only for failing to close the crisis together.
	RoundPenalty int

	// Cards held per player.
	HandSize int

	// RNG seed (0 => time-based)
	Seed int64
}

func DefaultConfig() Config {
	return Config{
		MaxPlayers:   3,
		MaxPressure:  10,
		RoundPenalty: 2,
		HandSize:     3,
	}
}

func (c Config) validate() error {
	if c.MaxPlayers <= 0 {
		return fmt.Errorf("MaxPlayers must be > 0")
	}
	if c.MaxPressure <= 0 {
		return fmt.Errorf("MaxPressure must be > 0")
	}
	if c.RoundPenalty < 0 {
		return fmt.Errorf("RoundPenalty must be >= 0")
	}
	if c.HandSize <= 0 {
		return fmt.Errorf("HandSize must be > 0")
	}
	return nil
}
