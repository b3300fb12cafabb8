package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bfkit/bfrt/bundle"
	"github.com/bfkit/bfrt/config"
	"github.com/bfkit/bfrt/runtime"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	usage = `Brainfuck toolchain and runtime

bfrt is a command line client for running, checking and compiling
Brainfuck programs, either bare source files or bundle directories
carrying a program.json manifest.`
	exactArgs = iota
	minArgs
	maxArgs
)

var defaults bundle.Defaults

func main() {
	app := cli.NewApp()
	app.Name = "bfrt"
	app.Usage = usage

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug output for logging",
		},
		cli.StringFlag{
			Name:  "log",
			Value: os.DevNull,
			Usage: "set the log file path where internal debug information is written",
		},
		cli.StringFlag{
			Name:  "log-format",
			Value: "json",
			Usage: "set the format used by logs ('json' (default), or 'text')",
		},
		cli.StringFlag{
			Name:  "config",
			Value: "",
			Usage: "path to a YAML file with default tape settings",
		},
		cli.IntFlag{
			Name:  "tape-size",
			Value: 0,
			Usage: "number of tape cells, overrides the config file",
		},
		cli.StringFlag{
			Name:  "memory-overflow",
			Value: "",
			Usage: "pointer overflow behavior ('wrap', 'abort' or 'undefined'), overrides the config file",
		},
		cli.BoolFlag{
			Name:  "no-optimize",
			Usage: "disable instruction folding",
		},
	}

	app.Commands = []cli.Command{
		runCommand,
		checkCommand,
		compileCommand,
		dumpCommand,
	}

	app.Before = func(context *cli.Context) error {
		debug := context.GlobalBool("debug")
		logFile := context.GlobalString("log")
		logFormat := context.GlobalString("log-format")

		if debug {
			logrus.SetLevel(logrus.DebugLevel)
		}

		var logWriter io.Writer
		if logFile == "" || logFile == os.DevNull {
			logWriter = io.Discard
		} else {
			if err := os.MkdirAll(filepath.Dir(logFile), 0666); err != nil {
				return err
			}

			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND|os.O_SYNC, 0666)
			if err != nil {
				return err
			}

			logWriter = f
		}
		logrus.SetOutput(logWriter)

		switch logFormat {
		case "text":
			// retain logrus's default.
		case "json":
			logrus.SetFormatter(new(logrus.JSONFormatter))
		default:
			return &InvalidLogFormatError{Format: logFormat}
		}

		c, err := config.Load(context.GlobalString("config"))
		if err != nil {
			return err
		}

		if tapeSize := context.GlobalInt("tape-size"); tapeSize != 0 {
			c.TapeSize = tapeSize
		}
		if mode := context.GlobalString("memory-overflow"); mode != "" {
			c.MemoryOverflow = mode
		}
		if context.GlobalBool("no-optimize") {
			c.Optimize = false
		}

		defaults, err = c.Defaults()
		return err
	}

	cli.ErrWriter = &fatalWriter{cli.ErrWriter}
	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

type fatalWriter struct {
	cliErrWriter io.Writer
}

func (f *fatalWriter) Write(p []byte) (n int, err error) {
	logrus.Error(string(p))
	return f.cliErrWriter.Write(p)
}

func checkArgs(context *cli.Context, expected, checkType int) error {
	var err error
	cmdName := context.Command.Name
	switch checkType {
	case exactArgs:
		if context.NArg() != expected {
			err = fmt.Errorf("%s: %q requires exactly %d argument(s)", os.Args[0], cmdName, expected)
		}
	case minArgs:
		if context.NArg() < expected {
			err = fmt.Errorf("%s: %q requires a minimum of %d argument(s)", os.Args[0], cmdName, expected)
		}
	case maxArgs:
		if context.NArg() > expected {
			err = fmt.Errorf("%s: %q requires a maximum of %d argument(s)", os.Args[0], cmdName, expected)
		}
	}

	if err != nil {
		fmt.Printf("Incorrect Usage.\n\n")
		_ = cli.ShowCommandHelp(context, cmdName)
		return err
	}
	return nil
}

func fatal(err error) {
	logrus.Error(err)
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func wireRuntime() *runtime.Runtime {
	return runtime.NewDefault(logrus.WithField("app", "bfrt"), defaults)
}
