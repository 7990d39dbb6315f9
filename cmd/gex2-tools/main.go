package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/SK83RJOSH/gex2-tools/vfx"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()

	app.Name = "gex2-tools"
	app.Usage = "Gex 2 asset extraction utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "extract",
			Usage:       "Extract textures from VFX containers",
			Description: "Decodes every texture and writes <stem>/<index>_<format>.png next to each input.",
			ArgsUsage:   "FILE...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output directory (default: next to each input)",
				},
				&cli.BoolFlag{
					Name:  "dds",
					Usage: "write uncompressed RGBA8 DDS instead of PNG",
				},
				&cli.IntFlag{
					Name:  "workers",
					Usage: "parallel texture decodes per container (0 = all CPUs)",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := newLogger(c)
				for _, path := range c.Args().Slice() {
					if err := extract(path, c.String("output"), c.Bool("dds"), c.Int("workers"), logger); err != nil {
						return cli.Exit(fmt.Sprintf("%s: %v", path, err), 1)
					}
				}

				return nil
			},
		},
		{
			Name:        "info",
			Usage:       "List textures in VFX containers",
			Description: "Prints index, format, dimensions and payload size for every texture without decoding.",
			ArgsUsage:   "FILE...",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				for _, path := range c.Args().Slice() {
					if err := info(path); err != nil {
						return cli.Exit(fmt.Sprintf("%s: %v", path, err), 1)
					}
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	return logger
}

func extract(path, outDir string, dds bool, workers int, logger *log.Logger) error {
	container, err := vfx.ReadFile(path)
	if err != nil {
		return err
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if outDir == "" {
		outDir = filepath.Dir(path)
	}
	dir := filepath.Join(outDir, stem)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if dds {
		for i, texture := range container.Textures {
			out := filepath.Join(dir, fmt.Sprintf("%d_%s.dds", i, texture.Format))
			if err := vfx.WriteDDS(texture, out); err != nil {
				return fmt.Errorf("texture %d: %w", i, err)
			}
			logger.Printf("wrote %s", out)
		}

		return nil
	}

	buffers, err := container.DecompressAll(&vfx.DecodeOptions{Workers: workers})
	if err != nil {
		return err
	}

	for i, texture := range container.Textures {
		out := filepath.Join(dir, fmt.Sprintf("%d_%s.png", i, texture.Format))
		if err := writePNG(out, vfx.Image(buffers[i], texture.Properties())); err != nil {
			return fmt.Errorf("texture %d: %w", i, err)
		}
		logger.Printf("wrote %s", out)
	}

	return nil
}

func info(path string) error {
	container, err := vfx.ReadFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d textures\n", path, len(container.Textures))
	for i, texture := range container.Textures {
		p := texture.Properties()
		fmt.Printf("  %3d  %-9s %4dx%-4d %6d bytes\n", i, texture.Format, p.Width, p.Height, len(texture.Data))
	}

	return nil
}

func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
