package main

import (
	"log"
	"os"

	"github.com/frangoulab/pwm2base/pwm2base_api"
	cli "github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.New(os.Stderr, "", 0).Fatal(err)
	}
}

func newApp() *cli.App {
	// -v is taken by --verbose
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}

	return &cli.App{
		Name:            "pwm2base",
		Usage:           "PWM to RNA/DNA bases converter",
		ArgsUsage:       "<input path>",
		HideHelpCommand: true,
		Version:         "0.3.0",
		Description: `Convert IUPAC sequences or weight matrices into concrete bases.

   pwm2base -s ~/Documents/pwm_file.txt
     Convert a PWM sequence file into DNA bases, written to '~/Documents/pwm_file-bases.tsv'
   pwm2base -m ~/PWM_Matrices/
     Convert all matrix files in the directory, written to '~/PWM_Matrices-bases.tsv'
   pwm2base -m ~/jaspar2016.pfm --rna -o ./output.tsv
     Convert a JASPAR frequency matrix file into RNA bases, written to './output.tsv'`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "sequences",
				Aliases:  []string{"s"},
				Usage:    "Path to a PWM sequences file (IUPAC codes) or a directory of them",
				Category: "Input",
			},
			&cli.StringFlag{
				Name:     "matrix",
				Aliases:  []string{"m"},
				Usage:    "Path to a PWM weights file (tab delimited or JASPAR .pfm) or a directory of them",
				Category: "Input",
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "Assign a custom output name instead of an auto-generated one",
				Category: "Output",
			},
			&cli.BoolFlag{
				Name:     "force",
				Aliases:  []string{"f"},
				Usage:    "Always override the output file",
				Category: "Output",
			},
			&cli.BoolFlag{
				Name:     "dna",
				Usage:    "Produce DNA output sequences (default)",
				Category: "Output",
			},
			&cli.BoolFlag{
				Name:     "rna",
				Usage:    "Produce RNA output sequences",
				Category: "Output",
			},
			&cli.BoolFlag{
				Name:     "verbose",
				Aliases:  []string{"v"},
				Usage:    "Verbose output (print the random seed used for sequence generation)",
				Category: "Optional",
			},
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "Configuration file (YAML) with the default alphabet, extensions and output suffix",
				Category: "Optional",
				Action: func(c *cli.Context, input string) error {
					if _, err := os.Stat(input); err != nil {
						return cli.Exit("Invalid config file '"+input+"': "+err.Error(), 1)
					}
					return nil
				},
			},
		},
		Action: func(Cctx *cli.Context) error {
			if Cctx.NumFlags() == 0 && !Cctx.Args().Present() {
				return cli.ShowAppHelp(Cctx)
			}
			config, err := pwm2base_api.ReadConfig(Cctx)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			picker, err := pwm2base_api.NewEntropyPicker()
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return pwm2base_api.Execute(Cctx, config, picker)
		},
	}
}
