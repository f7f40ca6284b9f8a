package config

import (
	"os"
	"testing"

	"github.com/linecast/nextline/internal/constants"
	"github.com/linecast/nextline/internal/testutil"
)

func TestSetupDefaults(t *testing.T) {
	origCommon := Common
	defer func() { Common = origCommon }()

	Common = nil
	Setup(&Args{ConfigFile: NoConfigFile})

	if Common == nil {
		t.Fatal("expected Common config to be initialized")
	}
	testutil.AssertEqual(t, constants.DefaultChunkSize, Common.ChunkSize)
	testutil.AssertEqual(t, constants.DefaultMaxDescriptors, Common.MaxDescriptors)
	testutil.AssertEqual(t, DefaultLogLevel, Common.LogLevel)
	testutil.AssertEqual(t, true, Common.TermColorsEnable)
}

func TestSetupConfigFile(t *testing.T) {
	origCommon := Common
	defer func() { Common = origCommon }()

	path := testutil.TempFile(t, "chunkSize: 128\nlogLevel: debug\ntermColors: false\n")
	Setup(&Args{ConfigFile: path})

	testutil.AssertEqual(t, 128, Common.ChunkSize)
	testutil.AssertEqual(t, "debug", Common.LogLevel)
	testutil.AssertEqual(t, false, Common.TermColorsEnable)
	// Unset keys keep their defaults.
	testutil.AssertEqual(t, constants.DefaultMaxDescriptors, Common.MaxDescriptors)
}

func TestSetupPrecedence(t *testing.T) {
	origCommon := Common
	defer func() { Common = origCommon }()

	path := testutil.TempFile(t, "chunkSize: 128\nlogLevel: debug\n")

	os.Setenv("NEXTLINE_CHUNK_SIZE", "256")
	defer os.Unsetenv("NEXTLINE_CHUNK_SIZE")

	t.Run("env overrides file", func(t *testing.T) {
		Setup(&Args{ConfigFile: path})
		testutil.AssertEqual(t, 256, Common.ChunkSize)
		testutil.AssertEqual(t, "debug", Common.LogLevel)
	})

	t.Run("args override env", func(t *testing.T) {
		Setup(&Args{ConfigFile: path, ChunkSize: 512, LogLevel: "warn"})
		testutil.AssertEqual(t, 512, Common.ChunkSize)
		testutil.AssertEqual(t, "warn", Common.LogLevel)
	})
}

func TestSetupInvalidChunkSize(t *testing.T) {
	origCommon := Common
	defer func() { Common = origCommon }()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected Setup to panic on invalid chunk size")
		}
	}()
	Setup(&Args{ConfigFile: NoConfigFile, ChunkSize: constants.MaxChunkSize + 1})
}

func TestParseConfigMissingFile(t *testing.T) {
	initializer := initializer{Common: newDefaultCommonConfig()}
	err := initializer.parseConfig(&Args{ConfigFile: "/no/such/file.yml"})
	testutil.AssertError(t, err, "unable to read config file")
}
