package constants

// Numeric limits and configuration values
const (
	// DefaultMaxDescriptors is the highest descriptor number accepted by
	// default. Retained buffers live in a map, so this is a validation
	// ceiling against garbage descriptor values, not a storage bound.
	DefaultMaxDescriptors = 65536

	// StdinDescriptor is the descriptor number of standard input.
	StdinDescriptor = 0
)
