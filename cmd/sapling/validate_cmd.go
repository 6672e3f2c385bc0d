package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type validateCmdConfig struct {
	*inputCmdConfig
	treeInput string
}

func validateCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &validateCmdConfig{inputCmdConfig: &inputCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a tree reproduces a set of exemplars",
		Long:  `Check that the tree predicts the label of every exemplar in the given set exactly. A tree always reproduces the set it was grown from.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			t, err := loadTree(config.treeInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			attributes, err := config.attributes()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			ds, err := config.dataset(ctx, attributes)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			valid, err := t.Validate(ctx, ds)
			if err != nil {
				fmt.Fprintf(os.Stderr, "validating the tree: %v\n", err)
				os.Exit(5)
			}
			if !valid {
				fmt.Println("the tree does not reproduce the given exemplars")
				os.Exit(6)
			}
			fmt.Println("the tree reproduces the given exemplars")
		},
	}
	config.setFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file from which the tree will be read and parsed as JSON (required)")
	return cmd
}

func (vcc *validateCmdConfig) Validate() error {
	if vcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return vcc.inputCmdConfig.Validate()
}
