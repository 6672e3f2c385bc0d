package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sapling-ml/sapling/tree"
	"github.com/spf13/cobra"
)

type inputsCmdConfig struct {
	*rootCmdConfig
	treeInput string
}

func inputsCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &inputsCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "inputs LABEL",
		Short: "List the instances a tree classifies with a label",
		Long:  `List the attribute assignments that drive the tree to the given label. Attributes not listed in an assignment do not affect its outcome.`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if config.treeInput == "" {
				fmt.Fprintln(os.Stderr, "required tree flag was not set")
				os.Exit(1)
			}
			t, err := loadTree(config.treeInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			inputs := tree.InputsFor(t, args[0])
			for _, assignment := range inputs {
				names := make([]string, 0, len(assignment))
				for name := range assignment {
					names = append(names, name)
				}
				sort.Strings(names)
				pairs := make([]string, 0, len(names))
				for _, name := range names {
					pairs = append(pairs, fmt.Sprintf("%s=%s", name, assignment[name]))
				}
				fmt.Println(strings.Join(pairs, " "))
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file from which the tree will be read and parsed as JSON (required)")
	return cmd
}
