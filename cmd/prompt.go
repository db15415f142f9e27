package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	digest "github.com/Giulio2002/faster_digest"
)

func newPromptCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Ask for one line of text and print its digests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(v)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, "Enter something: ")
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return errors.Wrap(err, "prompt: reading input")
			}
			line = strings.TrimRight(line, "\r\n")

			fmt.Fprintf(out, "Input: %s\n", line)
			for _, alg := range config.Algorithms {
				sum, err := digest.SumString(alg, line)
				if err != nil {
					return errors.Wrap(err, "prompt")
				}
				fmt.Fprintf(out, "%s Hash: %s\n", strings.ToUpper(alg.String()), sum)
			}
			return nil
		},
	}
}
