package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var compileCommand = cli.Command{
	Name:  "compile",
	Usage: "translate a program to C",
	ArgsUsage: `<program>

Where "<program>" is the path to a Brainfuck source file or to a bundle
directory containing a program.json manifest.`,
	Description: `The compile command lowers a program to a C translation unit and
writes it to stdout or to the file given with --output. With --emit-main
the output is a complete program that can be handed to a C compiler
as-is.`,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "output, o",
			Value: "",
			Usage: "write the generated C to this file instead of stdout",
		},
		cli.BoolFlag{
			Name:  "emit-main",
			Usage: "emit a main function wrapping the generated entry function",
		},
	},
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 1, exactArgs); err != nil {
			return err
		}

		path := context.Args().First()
		output := context.String("output")
		emitMain := context.Bool("emit-main")

		logger := logrus.WithFields(logrus.Fields{
			"path":     path,
			"output":   output,
			"emitMain": emitMain,
		})
		logger.Debug("compiling program")

		var out io.Writer = os.Stdout
		if output != "" {
			f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		return wireRuntime().Compile(path, out, emitMain)
	},
	SkipArgReorder: true,
}
