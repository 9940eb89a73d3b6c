package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/achilleasa/modelsnap/asset"
	"github.com/achilleasa/modelsnap/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a single framed snapshot of the supplied models.
func Snapshot(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() < 1 {
		cli.ShowAppHelp(ctx)
		return cli.NewExitError("", 1)
	}

	paths := make([]string, ctx.NArg())
	for idx := range paths {
		path := ctx.Args().Get(idx)
		if !strings.Contains(path, "://") {
			if _, err := os.Stat(path); err != nil {
				return cli.NewExitError(fmt.Sprintf("file %s not found!", path), 1)
			}
		}
		paths[idx] = path
	}

	opts := renderer.Options{
		FrameW:       uint32(ctx.Int("width")),
		FrameH:       uint32(ctx.Int("height")),
		OutputPath:   ctx.String("output"),
		IBLDirectory: ctx.String("ibl"),
		FramesToSkip: renderer.DefaultFramesToSkip,
	}

	model, err := asset.LoadModel(paths)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	r, err := renderer.NewSnapshot(model, opts)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	defer r.Close()

	start := time.Now()
	if err = r.Render(); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	logger.Noticef("rendered %s in %d ms", opts.OutputPath, time.Since(start).Nanoseconds()/1000000)

	displaySnapshotStats(r.Stats())
	return nil
}

func displaySnapshotStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frames rendered", "Captured frame", "Render time", "Capture time"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.FramesRendered),
		fmt.Sprintf("%d", stats.CapturedFrame),
		fmt.Sprintf("%s", stats.RenderTime),
		fmt.Sprintf("%s", stats.CaptureTime),
	})

	table.Render()
	logger.Noticef("snapshot statistics\n%s", buf.String())
}
