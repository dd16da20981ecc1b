package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-drt-raytracer/pkg/display"
	"github.com/df07/go-drt-raytracer/pkg/pipeline"
	"github.com/df07/go-drt-raytracer/pkg/scene"
)

// RenderFlags returns the flags accepted by the render command
func RenderFlags() []cli.Flag {
	defaults := pipeline.DefaultOptions()
	return []cli.Flag{
		cli.StringFlag{
			Name:   "scene, s",
			Value:  "base",
			Usage:  "built-in scene to render (see list-scenes)",
			EnvVar: "DRT_SCENE",
		},
		cli.IntFlag{
			Name:   "width",
			Value:  defaults.Width,
			Usage:  "frame width",
			EnvVar: "DRT_WIDTH",
		},
		cli.IntFlag{
			Name:   "height",
			Value:  defaults.Height,
			Usage:  "frame height",
			EnvVar: "DRT_HEIGHT",
		},
		cli.IntFlag{
			Name:   "spp",
			Value:  defaults.Sampling.SamplesPerPixel,
			Usage:  "jittered rays per pixel for the ssaa flow",
			EnvVar: "DRT_SPP",
		},
		cli.IntFlag{
			Name:   "depth",
			Value:  defaults.Integrator.MaxDepth,
			Usage:  "maximum reflection depth",
			EnvVar: "DRT_DEPTH",
		},
		cli.IntFlag{
			Name:   "shadow-samples",
			Value:  defaults.Integrator.ShadowSamples,
			Usage:  "shadow rays per hit for area lights",
			EnvVar: "DRT_SHADOW_SAMPLES",
		},
		cli.IntFlag{
			Name:   "glossy-samples",
			Value:  defaults.Integrator.GlossySamples,
			Usage:  "reflection rays averaged on rough surfaces",
			EnvVar: "DRT_GLOSSY_SAMPLES",
		},
		cli.Int64Flag{
			Name:   "seed",
			Value:  defaults.Sampling.Seed,
			Usage:  "base random seed",
			EnvVar: "DRT_SEED",
		},
		cli.IntFlag{
			Name:   "workers",
			Value:  defaults.Sampling.NumWorkers,
			Usage:  "number of render workers (0 = one per CPU)",
			EnvVar: "DRT_WORKERS",
		},
		cli.StringFlag{
			Name:   "flow, f",
			Value:  "ssaa",
			Usage:  fmt.Sprintf("render flow %v", pipeline.FlowNames()),
			EnvVar: "DRT_FLOW",
		},
		cli.StringFlag{
			Name:   "out, o",
			Usage:  fmt.Sprintf("output image (%s); each buffer is written as <name>_<buffer>.<ext>", strings.Join(display.Extensions, " or ")),
			EnvVar: "DRT_OUT",
		},
	}
}

// optionsFromContext applies the command line to the default options
func optionsFromContext(ctx *cli.Context) pipeline.Options {
	opts := pipeline.DefaultOptions()
	opts.Width = ctx.Int("width")
	opts.Height = ctx.Int("height")
	opts.Sampling.SamplesPerPixel = ctx.Int("spp")
	opts.Sampling.Seed = ctx.Int64("seed")
	opts.Sampling.NumWorkers = ctx.Int("workers")
	opts.Integrator.MaxDepth = ctx.Int("depth")
	opts.Integrator.ShadowSamples = ctx.Int("shadow-samples")
	opts.Integrator.GlossySamples = ctx.Int("glossy-samples")
	return opts
}

// createOutputPath returns output/<scene>/render_<timestamp>.png, creating the directory
func createOutputPath(sceneName string, now time.Time) (string, error) {
	outputDir := filepath.Join("output", sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	return filepath.Join(outputDir, fmt.Sprintf("render_%s.png", now.Format("20060102_150405"))), nil
}

// RenderFrame renders the selected scene through the selected flow and
// writes every produced buffer to disk.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := optionsFromContext(ctx)
	sceneName := ctx.String("scene")

	sc, err := scene.ByName(sceneName, opts.Width, opts.Height)
	if err != nil {
		return err
	}

	flow, err := pipeline.FlowByName(ctx.String("flow"), opts)
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if out == "" {
		if out, err = createOutputPath(sceneName, time.Now()); err != nil {
			return err
		}
	}

	logger.Noticef("rendering scene %q (%d primitives) with flow %q at %dx%d", sceneName, sc.GetPrimitiveCount(), flow.Name, opts.Width, opts.Height)
	flow.OnPassComplete = func(pass pipeline.Pass, elapsed time.Duration) {
		logger.Infof("pass %s finished in %s", pass.Name(), elapsed)
	}

	start := time.Now()
	result, err := flow.Run(context.Background(), pipeline.Uniforms{Scene: sc})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	for _, key := range result.Buffers() {
		path := display.OutputPath(out, string(key))
		if err := display.Save(path, result.Buffer(key)); err != nil {
			return err
		}
		logger.Noticef("wrote %s", path)
	}

	displayFrameStats(ctx.App.Writer, result, elapsed)
	return nil
}

func displayFrameStats(w io.Writer, result pipeline.Uniforms, elapsed time.Duration) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Buffer", "Pixels", "Rays", "Rays/pixel", "Tiles", "Workers", "Avg luminance", "Tile time", "Render time"})
	for _, key := range result.Buffers() {
		stat := result.Stats[key]
		table.Append([]string{
			string(key),
			fmt.Sprintf("%d", stat.TotalPixels),
			fmt.Sprintf("%d", stat.TotalSamples),
			fmt.Sprintf("%.1f", stat.AverageSamples),
			fmt.Sprintf("%d", stat.Tiles),
			fmt.Sprintf("%d", stat.Workers),
			fmt.Sprintf("%.3f", stat.AverageLuminance),
			stat.TileTime.String(),
			stat.Duration.String(),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "", "", "TOTAL", elapsed.String()})

	table.Render()
}
