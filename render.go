package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// RenderScene renders a still frame and saves it as a png.
func RenderScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}
	logHostInfo()

	config := renderer.SamplingConfig{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		NumWorkers:      resolveWorkers(ctx.Int("workers")),
		Seed:            ctx.Int64("seed"),
	}

	sc, err := createScene(ctx.String("scene"), config)
	if err != nil {
		return err
	}

	img, stats, err := renderer.NewRaytracer(sc, sc.SamplingConfig).Render()
	if err != nil {
		return err
	}

	displayRenderStats(stats)

	out := ctx.String("out")
	if err := loaders.SavePNG(out, img); err != nil {
		return err
	}
	logger.Noticef("render saved as %s", out)
	return nil
}

// ListScenes prints the built-in scenes and their default settings.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}
	return writeSceneTable(os.Stdout)
}

func createScene(name string, config renderer.SamplingConfig) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("missing scene name")
	}
	return scene.Create(name, config)
}

// resolveWorkers maps a worker count of 0 to the number of logical cpus
func resolveWorkers(requested int) int {
	if requested != 0 {
		return requested
	}

	count, err := cpu.Counts(true)
	if err != nil || count <= 0 {
		fallback := renderer.DefaultSamplingConfig().NumWorkers
		logger.Warningf("could not count cpus (%v), using %d workers", err, fallback)
		return fallback
	}

	logger.Infof("using %d workers, one per logical cpu", count)
	return count
}

func logHostInfo() {
	cpuInfo, err := cpu.Info()
	if err != nil || len(cpuInfo) == 0 {
		logger.Debugf("cpu information unavailable: %v", err)
		return
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		logger.Debugf("memory information unavailable: %v", err)
		return
	}

	logger.Debugf("host: %s @ %.2f GHz, %d GB ram",
		cpuInfo[0].ModelName, cpuInfo[0].Mhz/1000, memInfo.Total/(1024*1024*1024))
}

func displayRenderStats(stats renderer.RenderStats) {
	logger.Noticef("render statistics\n%s", formatRenderStats(stats))
}

func formatRenderStats(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "Samples", "% of frame", "Render time"})
	for _, w := range stats.Workers {
		percent := 0.0
		if stats.TotalSamples > 0 {
			percent = 100 * float64(w.Samples) / float64(stats.TotalSamples)
		}
		table.Append([]string{
			fmt.Sprintf("%d", w.ID),
			fmt.Sprintf("%d", w.Rows),
			fmt.Sprintf("%d", w.Samples),
			fmt.Sprintf("%02.1f %%", percent),
			w.Duration.String(),
		})
	}
	table.SetFooter([]string{
		"", "", fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.0f samples/s", stats.SamplesPerSecond()),
		stats.Duration.String(),
	})

	table.Render()
	return buf.String()
}

func writeSceneTable(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Scene", "Surfaces", "Samples per pixel", "Vertical fov"})
	for _, name := range scene.Names() {
		sc, err := scene.Create(name, renderer.SamplingConfig{})
		if err != nil {
			return err
		}
		table.Append([]string{
			name,
			fmt.Sprintf("%d", sc.World.Len()),
			fmt.Sprintf("%d", sc.SamplingConfig.SamplesPerPixel),
			fmt.Sprintf("%g", sc.CameraConfig.VFov),
		})
	}
	table.Render()
	return nil
}
