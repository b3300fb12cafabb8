package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var dumpCommand = cli.Command{
	Name:  "dump",
	Usage: "print a program's instruction list",
	ArgsUsage: `<program>

Where "<program>" is the path to a Brainfuck source file or to a bundle
directory containing a program.json manifest.`,
	Description: `The dump command prints the instructions a program parses to, one
per line, after any instruction folding. Useful for seeing what the
optimizer did to a program.`,
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 1, exactArgs); err != nil {
			return err
		}

		path := context.Args().First()

		logrus.WithFields(logrus.Fields{
			"path": path,
		}).Debug("dumping program")

		return wireRuntime().Dump(path, os.Stdout)
	},
	SkipArgReorder: true,
}
