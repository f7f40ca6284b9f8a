package constants

// Buffer size constants in bytes
const (
	// DefaultChunkSize is the default size of one bounded read from a
	// descriptor. It only affects the number of read calls, never the
	// content of the returned lines.
	DefaultChunkSize = 4096

	// LineBufferInitialCapacity is the initial capacity for retained
	// line buffers (4KB). Most text lines are well below this.
	LineBufferInitialCapacity = 4096

	// MinChunkSize is the smallest accepted chunk size.
	MinChunkSize = 1

	// MaxChunkSize caps the chunk size to keep single reads bounded (1MB).
	MaxChunkSize = 1024 * 1024
)
