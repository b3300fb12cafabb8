package main

import (
	"os"

	"github.com/bfkit/bfrt/runtime"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var runCommand = cli.Command{
	Name:  "run",
	Usage: "run a program on the interpreter",
	ArgsUsage: `<program>

Where "<program>" is the path to a Brainfuck source file or to a bundle
directory containing a program.json manifest.`,
	Description: `The run command executes a program. Program input is read from stdin
and program output is written to stdout. The process exits with the
program's result: the value of the cell under the pointer when the last
instruction has run.`,
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 1, exactArgs); err != nil {
			return err
		}

		path := context.Args().First()

		logger := logrus.WithFields(logrus.Fields{
			"path": path,
		})
		logger.Debug("running program")

		result, err := wireRuntime().Run(path, runtime.IO{
			In:  os.Stdin,
			Out: os.Stdout,
		})
		if err != nil {
			return err
		}

		os.Exit(result)
		return nil
	},
	SkipArgReorder: true,
}
