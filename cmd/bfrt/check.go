package main

import (
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var checkCommand = cli.Command{
	Name:  "check",
	Usage: "validate programs without running them",
	ArgsUsage: `<program> [program...]

Where each "<program>" is the path to a Brainfuck source file or to a
bundle directory containing a program.json manifest.`,
	Description: `The check command loads and parses every given program and reports
all problems it finds: missing files, invalid manifests and unbalanced
loop brackets.`,
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 1, minArgs); err != nil {
			return err
		}

		paths := context.Args()

		logrus.WithFields(logrus.Fields{
			"paths": []string(paths),
		}).Debug("checking programs")

		return wireRuntime().Check(paths...)
	},
	SkipArgReorder: true,
}
