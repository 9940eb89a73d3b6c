package main

import (
	"os"

	"github.com/achilleasa/modelsnap/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	// The upstream viewer reserves -h for the frame height, so the help flag
	// only answers to --help and -?.
	cli.HelpFlag = cli.BoolFlag{
		Name:  "help, ?",
		Usage: "print usage",
	}

	app := cli.NewApp()
	app.Name = "modelsnap"
	app.Usage = "generate PNG snapshots of glTF models"
	app.ArgsUsage = "model1.gltf model2.glb ..."
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.IntFlag{
			Name:  "width, w",
			Value: 800,
			Usage: "snapshot width in pixels",
		},
		cli.IntFlag{
			Name:  "height, h",
			Value: 600,
			Usage: "snapshot height in pixels",
		},
		cli.StringFlag{
			Name:  "output, o",
			Value: "snapshot.png",
			Usage: "output path for the rendered PNG",
		},
		cli.StringFlag{
			Name:  "ibl, i",
			Usage: "directory with environment images used for ambient lighting",
		},
	}
	app.Action = cmd.Snapshot

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
