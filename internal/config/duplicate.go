package config

// DuplicateConfig holds settings for detecting games that end in the same position.
type DuplicateConfig struct {
	// Detect counts games whose final placement was already seen.
	Detect bool

	// ExactMatch compares the full 64-bit hash instead of the weak hash.
	ExactMatch bool

	// MaxPositions caps the number of stored positions; 0 is unlimited.
	MaxPositions int
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{
		Detect:     true,
		ExactMatch: true,
	}
}
