// Package main provides the nlcat command. It prints files line by line
// through the nextline reader, decompressing ".zst" files transparently
// and optionally filtering and numbering the output. With no file
// arguments, or "-", it reads standard input.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"

	"github.com/linecast/nextline"
	"github.com/linecast/nextline/internal/config"
	"github.com/linecast/nextline/internal/dlog"
	"github.com/linecast/nextline/internal/io/source"
	"github.com/linecast/nextline/internal/regex"
	"github.com/linecast/nextline/internal/version"
)

func main() {
	var args config.Args
	var displayVersion bool
	var numbers bool
	var grep string
	var invert bool

	flag.BoolVar(&args.NoColor, "noColor", false, "Disable ANSII terminal colors")
	flag.BoolVar(&args.Quiet, "quiet", false, "Quiet output mode")
	flag.BoolVar(&displayVersion, "version", false, "Display version")
	flag.BoolVar(&numbers, "numbers", false, "Prefix each line with its line number")
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

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{source.StdinName}
	}

	reader := nextline.New(
		nextline.WithChunkSize(config.Common.ChunkSize),
		nextline.WithMaxDescriptors(config.Common.MaxDescriptors),
	)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	failed := false
	lineNum := 0
	for _, path := range paths {
		if err := cat(reader, out, path, re, numbers, &lineNum); err != nil {
			dlog.WithField("path", path).Error(err)
			failed = true
		}
	}
	out.Flush()
	if failed {
		os.Exit(1)
	}
}

// cat prints one source line by line. The line number counter continues
// across files, like cat -n over multiple arguments.
func cat(reader *nextline.Reader, out *bufio.Writer, path string,
	re regex.Regex, numbers bool, lineNum *int) error {

	src, err := source.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	if err := src.Attach(reader); err != nil {
		return err
	}
	defer reader.Forget(src.Fd())

	for {
		line, err := reader.ReadLine(src.Fd())
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !re.MatchString(line) {
			continue
		}
		*lineNum++
		if numbers {
			if config.Common.TermColorsEnable {
				fmt.Fprintf(out, "%6d\t%s", aurora.Green(*lineNum), line)
			} else {
				fmt.Fprintf(out, "%6d\t%s", *lineNum, line)
			}
		} else {
			out.WriteString(line)
		}
	}
}
