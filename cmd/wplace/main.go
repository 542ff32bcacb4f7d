package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	wplace "github.com/vslashg/cornmunity-wplace"
	"github.com/vslashg/cornmunity-wplace/palette"
)

const defaultDB = "wplace.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func newConverter(c *cli.Context) (*wplace.Converter, error) {
	metric, err := palette.ParseMetric(c.String("metric"))
	if err != nil {
		return nil, err
	}
	return wplace.New(metric, newLogger(c)), nil
}

func parseOverrides(mappings []string) (map[palette.Color]palette.Color, error) {
	if len(mappings) == 0 {
		return nil, nil
	}
	overrides := make(map[palette.Color]palette.Color, len(mappings))
	for _, s := range mappings {
		from, to, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("invalid mapping %q, expected SRC=DST", s)
		}
		src, err := palette.ParseHex(from)
		if err != nil {
			return nil, err
		}
		dst, err := palette.ParseHex(to)
		if err != nil {
			return nil, err
		}
		overrides[src] = dst
	}
	return overrides, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "wplace"
	app.Usage = "wplace pixel art grid utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"WPLACE_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to tally database",
		},
		&cli.StringFlag{
			Name:    "metric",
			EnvVars: []string{"WPLACE_METRIC"},
			Value:   "lab",
			Usage:   "color distance metric, \"lab\" or \"rgb\"",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "grid",
			Usage:       "Convert an image into an annotated tile grid",
			Description: "",
			ArgsUsage:   "INPUT OUTPUT",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "diff",
					Usage: "comparison image, changed pixels are ringed in red",
				},
				&cli.IntFlag{
					Name:  "x-start",
					Usage: "left edge of the region to draw",
				},
				&cli.IntFlag{
					Name:  "y-start",
					Usage: "top edge of the region to draw",
				},
				&cli.IntFlag{
					Name:  "x-len",
					Usage: "width of the region to draw, 0 for the rest",
				},
				&cli.IntFlag{
					Name:  "y-len",
					Usage: "height of the region to draw, 0 for the rest",
				},
				&cli.IntFlag{
					Name:  "x-world",
					Usage: "world x coordinate of the image's left edge",
				},
				&cli.IntFlag{
					Name:  "y-world",
					Usage: "world y coordinate of the image's top edge",
				},
				&cli.IntFlag{
					Name:  "x-stride",
					Value: 8,
					Usage: "width of the larger grid divisions",
				},
				&cli.IntFlag{
					Name:  "y-stride",
					Value: 8,
					Usage: "height of the larger grid divisions",
				},
				&cli.IntFlag{
					Name:  "x-stride-off",
					Usage: "shift of the first vertical division",
				},
				&cli.IntFlag{
					Name:  "y-stride-off",
					Usage: "shift of the first horizontal division",
				},
				&cli.BoolFlag{
					Name:  "fade-same",
					Usage: "with --diff, fade pixels that already match",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				conv, err := newConverter(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				o := wplace.GridOptions{
					XStart:     c.Int("x-start"),
					YStart:     c.Int("y-start"),
					XLen:       c.Int("x-len"),
					YLen:       c.Int("y-len"),
					XWorldOff:  c.Int("x-world"),
					YWorldOff:  c.Int("y-world"),
					XStride:    c.Int("x-stride"),
					YStride:    c.Int("y-stride"),
					XStrideOff: c.Int("x-stride-off"),
					YStrideOff: c.Int("y-stride-off"),
					FadeSame:   c.Bool("fade-same"),
				}

				if err := conv.Grid(c.Args().Get(0), c.Args().Get(1), c.String("diff"), o); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "nearest",
			Usage:       "Snap an image onto the wplace palette",
			Description: "",
			ArgsUsage:   "INPUT OUTPUT",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "colors",
					Usage: "quantize to at most this many colors first",
				},
				&cli.IntFlag{
					Name:  "width",
					Usage: "resize to this width first, 0 keeps the aspect ratio",
				},
				&cli.IntFlag{
					Name:  "height",
					Usage: "resize to this height first, 0 keeps the aspect ratio",
				},
				&cli.StringSliceFlag{
					Name:  "map",
					Usage: "force SRC=DST hex color mappings, repeatable",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				conv, err := newConverter(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				overrides, err := parseOverrides(c.StringSlice("map"))
				if err != nil {
					return cli.Exit(err, 1)
				}

				o := wplace.NearestOptions{
					Overrides: overrides,
					MaxColors: c.Int("colors"),
					Width:     c.Int("width"),
					Height:    c.Int("height"),
				}

				if err := conv.Nearest(c.Args().Get(0), c.Args().Get(1), o); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "report",
			Usage:       "Tally palette usage for images",
			Description: "",
			ArgsUsage:   "FILE...",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "save",
					Usage: "archive each tally in the database",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				conv, err := newConverter(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				var cat *wplace.Catalog
				if c.Bool("save") {
					if cat, err = wplace.OpenCatalog(c.String("db")); err != nil {
						return cli.Exit(err, 1)
					}
					defer cat.Close()
				}

				if err := conv.Report(os.Stdout, cat, c.Args().Slice()...); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Scan a directory tree and archive palette tallies",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				conv, err := newConverter(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				cat, err := wplace.OpenCatalog(c.String("db"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer cat.Close()

				if err := conv.Scan(c.Args().First(), cat); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
