package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yigit/student360/internal/pkg/logger"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		// Use the default logger setup by the logger package's init
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "student360",
		Usage: "generate, publish and report on a synthetic higher-education dataset",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to the optional YAML config file",
				Value:   "configs/config.yaml",
				EnvVars: []string{"STUDENT360_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "write the dataset as CSV files plus a manifest",
				Flags:  append(datasetFlags(), outDirFlag),
				Action: generateAction,
			},
			{
				Name:  "upload",
				Usage: "upload a generated data directory to an S3 bucket",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "bucket", Usage: "target bucket name (default from config)"},
					&cli.StringFlag{Name: "data-dir", Usage: "directory to upload (default: generator out dir)"},
					&cli.StringFlag{Name: "region", Usage: "bucket region (default: config, AWS_DEFAULT_REGION, us-east-1)"},
				},
				Action: uploadAction,
			},
			{
				Name:   "load",
				Usage:  "load the dataset into the PostgreSQL warehouse",
				Flags:  datasetFlags(),
				Action: loadAction,
			},
			{
				Name:  "serve",
				Usage: "serve term reports over the dataset",
				Flags: append(datasetFlags(),
					&cli.StringFlag{Name: "port", Usage: "listen port (default from config)"},
				),
				Action: serveAction,
			},
		},
	}
}

var outDirFlag = &cli.StringFlag{Name: "out-dir", Usage: "output directory, created if absent"}

func datasetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "num-students", Usage: "number of students to generate"},
		&cli.Int64Flag{Name: "seed", Usage: "random seed"},
	}
}
