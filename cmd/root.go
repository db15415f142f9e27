package cmd

import (
	goflag "flag"
	"os"
	"runtime"
	"strings"

	"github.com/golang/glog"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs the digest command tree and exits non-zero on failure.
func Execute() {
	err := NewRootCommand().Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree around its own viper instance, so
// flags, environment variables and the config file never leak between trees.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:          "digest",
		Short:        "Compute SHA-256 and SHA3-256 digests",
		Long:         `Hashes text with SHA-256 (FIPS 180-4) and SHA3-256 (FIPS 202) and prints lowercase hex digests.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.faster_digest/digest.yaml)")
	SetupRootFlags(rootCmd)
	cobra.CheckErr(v.BindPFlags(rootCmd.PersistentFlags()))

	// glog registers its flags on the standard flag set.
	rootCmd.PersistentFlags().AddGoFlagSet(goflag.CommandLine)

	rootCmd.AddCommand(newSumCommand(v), newPromptCommand(v))
	return rootCmd
}

func SetupRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringSlice("algo", []string{"sha256", "sha3-256"},
		"Comma-separated list of algorithms to run. Supported: sha256, sha3-256.")
	cmd.PersistentFlags().Int("workers", runtime.GOMAXPROCS(0),
		"Maximum number of lines hashed concurrently. Each line is hashed by a single goroutine.")
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Expand("~/.faster_digest")
		if err != nil {
			return errors.Wrap(err, "initConfig: resolving config directory")
		}
		v.AddConfigPath(home)
		v.SetConfigName("digest")
	}

	// Environment variable support, e.g. DIGEST_WORKERS=4.
	v.SetEnvPrefix("digest")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrapf(err, "initConfig: reading config file")
	}
	glog.Infof("Using config file: %s", v.ConfigFileUsed())
	return nil
}
