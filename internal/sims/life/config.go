package life

import "strconv"

// Config controls the hosted Life simulation.
type Config struct {
	Width  int
	Height int

	// Density is the random-seed threshold out of 256: on Reset each cell
	// starts Alive when a uniform byte draw falls below it.
	Density int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 128, Density: 32}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 256 {
			c.Density = parsed
		}
	}
	return c
}
