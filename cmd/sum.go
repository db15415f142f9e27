package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// maxLineSize caps a single input line read by the sum command.
const maxLineSize = 64 << 20

func newSumCommand(v *viper.Viper) *cobra.Command {
	sumCmd := &cobra.Command{
		Use:   "sum [text...]",
		Short: "Hash each argument, or each input line when no arguments are given",
		Long: `Prints one "<hex>  <algorithm>  <text>" line per input text and algorithm,
in input order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(v)
			if err != nil {
				return err
			}

			lines := args
			if len(lines) == 0 {
				if lines, err = readInput(cmd, config.Input); err != nil {
					return err
				}
			}

			results, err := hashLines(cmd.Context(), config, lines)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, line := range lines {
				for j, alg := range config.Algorithms {
					if _, err := fmt.Fprintf(out, "%s  %s  %s\n", results[i][j], alg, line); err != nil {
						return errors.Wrap(err, "sum: writing output")
					}
				}
			}
			return nil
		},
	}

	sumCmd.Flags().String("input", "", "Read lines from this file instead of standard input")
	cobra.CheckErr(v.BindPFlag("input", sumCmd.Flags().Lookup("input")))
	return sumCmd
}

func readInput(cmd *cobra.Command, path string) ([]string, error) {
	if path == "" {
		return readLines(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "readInput: opening %s", path)
	}
	defer f.Close()
	return readLines(f)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "readLines")
	}
	return lines, nil
}
