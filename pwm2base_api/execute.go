package pwm2base_api

import (
	"fmt"
	"log"

	cli "github.com/urfave/cli/v2"
)

// Convert all records of the input files and write them to the output file
func Execute(Cctx *cli.Context, config *Config, picker *RandomPicker) error {
	logger := log.New(Cctx.App.ErrWriter, "", 0)

	input, matrix, err := inputFromFlags(Cctx)
	if err != nil {
		return err
	}

	if config.Verbose {
		logger.Printf("Random seed: %d", picker.Seed())
	}

	files, isDir, err := ListInputs(input, config.Extensions, logger)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Couldn't open input '%s': %v", input, err), 1)
	}
	if len(files) == 0 {
		return cli.Exit("No input files provided", 1)
	}

	output := Cctx.String("output")
	if output == "" {
		output = OutputPath(input, isDir, config.OutputSuffix)
	}
	if !config.Force {
		ok, err := ConfirmOverwrite(output, Cctx.App.Reader, Cctx.App.Writer)
		if err != nil {
			return err
		}
		if !ok {
			return cli.Exit(fmt.Sprintf("Skipping file '%s'", input), 1)
		}
	}

	writer, err := CreateOutput(output)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Couldn't open the output file '%s': %v", output, err), 1)
	}

	resolvers := NewResolvers(matrix, config.OutputAlphabet, picker)
	for _, file := range files {
		resolver := resolvers.ForFile(file)
		recordCount := 0
		err := ReadRecords(file, matrix, func(record *Record) error {
			sequence, err := resolver.Convert(record.Id, record.Seq)
			if err != nil {
				return err
			}
			record.Seq = sequence
			recordCount++
			return writer.Write(record)
		})
		if err != nil {
			writer.Close()
			return err
		}
		if config.Verbose {
			logger.Printf("Converted %d records from '%s'", recordCount, file)
		}
	}

	if err := writer.Close(); err != nil {
		return err
	}
	fmt.Fprintf(Cctx.App.Writer, "The output file is located at '%s'\n", output)
	return nil
}

// Determine the input path and whether it holds weight matrices
func inputFromFlags(Cctx *cli.Context) (string, bool, error) {
	sequences := Cctx.String("sequences")
	matrix := Cctx.String("matrix")

	switch {
	case sequences != "" && matrix != "":
		return "", false, cli.Exit("Can't provide both '-s' and '-m' files. Aborting", 1)
	case matrix != "":
		return matrix, true, nil
	case sequences != "":
		return sequences, false, nil
	case Cctx.Args().Present():
		return Cctx.Args().First(), false, nil
	default:
		return "", false, cli.Exit("No input files provided. Terminating", 1)
	}
}
