package config

import (
	"os"
	"testing"

	"github.com/linecast/nextline/internal/testutil"
)

func TestEnv(t *testing.T) {
	t.Run("env var set to yes", func(t *testing.T) {
		os.Setenv("TEST_ENV_VAR", "yes")
		defer os.Unsetenv("TEST_ENV_VAR")

		testutil.AssertEqual(t, true, Env("TEST_ENV_VAR"))
	})

	t.Run("env var set to other value", func(t *testing.T) {
		os.Setenv("TEST_ENV_VAR", "no")
		defer os.Unsetenv("TEST_ENV_VAR")

		testutil.AssertEqual(t, false, Env("TEST_ENV_VAR"))
	})

	t.Run("non-existing env var", func(t *testing.T) {
		os.Unsetenv("NON_EXISTING_VAR")

		testutil.AssertEqual(t, false, Env("NON_EXISTING_VAR"))
	})
}

func TestEnvInt(t *testing.T) {
	t.Run("valid integer", func(t *testing.T) {
		os.Setenv("TEST_INT_VAR", "42")
		defer os.Unsetenv("TEST_INT_VAR")

		n, ok := EnvInt("TEST_INT_VAR")
		testutil.AssertEqual(t, true, ok)
		testutil.AssertEqual(t, 42, n)
	})

	t.Run("invalid integer", func(t *testing.T) {
		os.Setenv("TEST_INT_VAR", "forty-two")
		defer os.Unsetenv("TEST_INT_VAR")

		_, ok := EnvInt("TEST_INT_VAR")
		testutil.AssertEqual(t, false, ok)
	})

	t.Run("unset variable", func(t *testing.T) {
		os.Unsetenv("TEST_INT_VAR")

		_, ok := EnvInt("TEST_INT_VAR")
		testutil.AssertEqual(t, false, ok)
	})
}
