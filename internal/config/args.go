package config

// Args holds the command line arguments shared by the nextline commands.
// Zero values mean "not set on the command line".
type Args struct {
	ConfigFile string
	LogLevel   string
	ChunkSize  int
	NoColor    bool
	Quiet      bool
}
