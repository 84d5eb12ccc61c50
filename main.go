// Epicycles decomposes a closed path into rotating circles and draws it back.
// Points come either from a file with one "x y" pair per line or from one of
// the built-in shapes:
//
//	epicycles coefficients --shape star --circles 16
//	epicycles animate --points drawing.txt --circles 64
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/VictorDenisov/epicycles/config"
	"github.com/VictorDenisov/epicycles/report"
)

func main() {
	var configFile, logLevel string
	var cfg config.Config

	var outFile string
	var steps, frames int
	var sortByMagnitude, printChain bool
	var tolerance float64

	app := &cli.App{
		Name:                 "epicycles",
		Usage:                "Draw closed paths with rotating circles",
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "YAML file with default settings",
				Destination: &configFile,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "trace, debug, info, warn or error",
				Value:       "info",
				Destination: &logLevel,
			},
		},
		Before: func(cCtx *cli.Context) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			cfg, err = config.Load(configFile)
			return err
		},
		Commands: []*cli.Command{
			{
				Name:    "coefficients",
				Aliases: []string{"c"},
				Usage:   "Print the epicycle coefficients",
				Action: func(cCtx *cli.Context) error {
					cfg.ApplyFlags(cCtx)
					_, series, err := cfg.Series()
					if err != nil {
						return err
					}
					return report.Coefficients(os.Stdout, series, sortByMagnitude)
				},
				Flags: append(config.SourceFlags(),
					&cli.BoolFlag{
						Name:        "sort",
						Usage:       "Order by decreasing magnitude",
						Destination: &sortByMagnitude,
					},
				),
			},
			{
				Name:    "chart",
				Aliases: []string{"ch"},
				Usage:   "Render input points, reconstruction and spectrum to HTML",
				Action: func(cCtx *cli.Context) error {
					cfg.ApplyFlags(cCtx)
					path, series, err := cfg.Series()
					if err != nil {
						return err
					}
					log.Infof("Writing chart to %s", outFile)
					return report.Chart(outFile, path, series, steps)
				},
				Flags: append(config.SourceFlags(),
					&cli.StringFlag{
						Name:        "out",
						Aliases:     []string{"o"},
						Usage:       "Output HTML file",
						Value:       "epicycles.html",
						Destination: &outFile,
					},
					&cli.IntFlag{
						Name:        "steps",
						Usage:       "Points sampled along the reconstructed outline",
						Value:       256,
						Destination: &steps,
					},
				),
			},
			{
				Name:    "animate",
				Aliases: []string{"a"},
				Usage:   "Animate the epicycles in a window",
				Action: func(cCtx *cli.Context) error {
					cfg.ApplyFlags(cCtx)
					path, series, err := cfg.Series()
					if err != nil {
						return err
					}
					ctx, stop := setupSignalHandling(cCtx.Context)
					defer stop()
					return MainLoop(ctx, cfg, path, series)
				},
				Flags: append(config.SourceFlags(), config.ViewerFlags()...),
			},
			{
				Name:    "trace",
				Aliases: []string{"t"},
				Usage:   "Print the reconstructed tip for evenly spaced times",
				Action: func(cCtx *cli.Context) error {
					cfg.ApplyFlags(cCtx)
					_, series, err := cfg.Series()
					if err != nil {
						return err
					}
					ctx, stop := setupSignalHandling(cCtx.Context)
					defer stop()
					return report.Trace(ctx, os.Stdout, series, frames, printChain)
				},
				Flags: append(config.SourceFlags(),
					&cli.IntFlag{
						Name:        "frames",
						Aliases:     []string{"n"},
						Usage:       "Number of frames over one period",
						Value:       60,
						Destination: &frames,
					},
					&cli.BoolFlag{
						Name:        "chain",
						Usage:       "Print every link, not only the tip",
						Destination: &printChain,
					},
				),
			},
			{
				Name:    "verify",
				Aliases: []string{"v"},
				Usage:   "Compare the direct transform with an FFT",
				Action: func(cCtx *cli.Context) error {
					cfg.ApplyFlags(cCtx)
					path, err := cfg.Path()
					if err != nil {
						return err
					}
					return report.Verify(os.Stdout, path, tolerance)
				},
				Flags: append(config.SourceFlags(),
					&cli.Float64Flag{
						Name:        "tolerance",
						Usage:       "Largest accepted difference relative to the largest bin",
						Value:       1e-9,
						Destination: &tolerance,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
