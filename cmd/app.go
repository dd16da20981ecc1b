package cmd

import (
	"github.com/urfave/cli"
)

// NewApp builds the drt command line application
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "drt"
	app.Usage = "render sphere scenes with distributed ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a frame",
			Description: `
Render a built-in scene through one of the render flows and write every
buffer the flow produces next to the output path:

  hello    gradient test image and its gray version
  pretest  depth and normal visualisations
  shade    one ray per pixel
  ssaa     supersampled render and its gray version`,
			Flags:  RenderFlags(),
			Action: RenderFrame,
		},
		{
			Name:   "list-scenes",
			Usage:  "list built-in scenes",
			Action: ListScenes,
		},
	}
	return app
}
