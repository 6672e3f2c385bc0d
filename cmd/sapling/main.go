package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose bool
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sapling",
		Short: "sapling is a tool to grow ID3 classification trees",
		Long:  `A tool to grow classification trees from your labeled data, validate them, and use them to classify new instances`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "")
	rootCmd.AddCommand(versionCmd(), growCmd(config), predictCmd(config), validateCmd(config), inputsCmd(config))
	return rootCmd
}
