package cmd

import (
	"github.com/achilleasa/modelsnap/log"
	"github.com/urfave/cli"
)

var logger = log.New("modelsnap")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
