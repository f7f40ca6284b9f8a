package config

import (
	"os"
	"strconv"
)

// Env returns true when a given environment variable is set to "yes".
func Env(env string) bool {
	return "yes" == os.Getenv(env)
}

// EnvInt returns the integer value of an environment variable. The second
// return value reports whether the variable was set to a valid integer.
func EnvInt(env string) (int, bool) {
	s := os.Getenv(env)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
