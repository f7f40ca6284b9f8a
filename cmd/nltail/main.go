// Package main provides the nltail command. It follows a single file the
// way tail -f does, printing complete lines as the file grows. Lines are
// only emitted once their newline arrived, so a line the writer is still
// appending to never shows up split.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/linecast/nextline"
	"github.com/linecast/nextline/internal/config"
	"github.com/linecast/nextline/internal/dlog"
	"github.com/linecast/nextline/internal/io/follow"
	"github.com/linecast/nextline/internal/io/signal"
	"github.com/linecast/nextline/internal/regex"
	"github.com/linecast/nextline/internal/version"
)

func main() {
	var args config.Args
	var displayVersion bool
	var fromStart bool
	var grep string
	var invert bool

	flag.BoolVar(&args.NoColor, "noColor", false, "Disable ANSII terminal colors")
	flag.BoolVar(&args.Quiet, "quiet", false, "Quiet output mode")
	flag.BoolVar(&displayVersion, "version", false, "Display version")
	flag.BoolVar(&fromStart, "fromStart", false, "Print existing content before following")
	flag.BoolVar(&invert, "invert", false, "Invert the grep filter")
	flag.IntVar(&args.ChunkSize, "chunkSize", 0, "Read chunk size in bytes (0: configured default)")
	flag.StringVar(&args.ConfigFile, "cfg", "", "Config file path")
	flag.StringVar(&args.LogLevel, "logLevel", "", "Log level")
	flag.StringVar(&grep, "grep", "", "Only print lines matching this pattern")

	flag.Parse()
	config.Setup(&args)

	if args.Quiet {
		dlog.Setup("error")
	} else {
		dlog.Setup(config.Common.LogLevel)
	}

	if displayVersion {
		version.PrintAndExit()
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: nltail [flags] <file>")
		os.Exit(2)
	}

	re := regex.NewNoop()
	if grep != "" {
		regexFlag := regex.Default
		if invert {
			regexFlag = regex.Invert
		}
		var err error
		if re, err = regex.New(grep, regexFlag); err != nil {
			dlog.Fatal("Invalid grep pattern: ", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signal.InterruptWithCancel(ctx, cancel)

	follower := follow.New(flag.Arg(0), fromStart,
		nextline.WithChunkSize(config.Common.ChunkSize),
		nextline.WithMaxDescriptors(config.Common.MaxDescriptors),
	)

	err := follower.Start(ctx, func(line string) error {
		if re.MatchString(line) {
			fmt.Print(line)
		}
		return nil
	})
	if err != nil {
		dlog.WithField("path", flag.Arg(0)).Error(err)
		os.Exit(1)
	}
}
