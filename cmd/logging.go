package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-drt-raytracer/pkg/log"
)

var logger = log.New("drt")

func setupLogging(ctx *cli.Context) {
	log.SetLevel(log.VerbosityLevel(ctx.GlobalBool("v"), ctx.GlobalBool("vv")))
}
