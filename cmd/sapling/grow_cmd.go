package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sapling-ml/sapling"
	"github.com/sapling-ml/sapling/exemplar"
	"github.com/sapling-ml/sapling/tree"
	treejson "github.com/sapling-ml/sapling/tree/json"
	"github.com/sapling-ml/sapling/tree/redisstore"
	"github.com/spf13/cobra"
	redis "gopkg.in/redis.v5"
)

type growCmdConfig struct {
	*inputCmdConfig
	output    string
	workers   int
	storeURL  string
	storeName string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{inputCmdConfig: &inputCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of exemplars",
		Long:  `Grow a classification tree from a set of labeled exemplars to predict their label.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			attributes, err := config.attributes()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			ds, err := config.dataset(ctx, attributes)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			names := make([]string, 0, len(attributes))
			for _, a := range attributes {
				names = append(names, a.Name())
			}
			count, err := ds.Count(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "counting exemplars: %v\n", err)
				os.Exit(4)
			}
			config.Logf("Growing tree from a set with %d exemplars and %d attributes to predict %s ...", count, len(names), config.label)
			var t *tree.Tree
			if config.workers > 1 {
				t, err = sapling.GrowConcurrently(ctx, ds, names, config.workers)
			} else {
				t, err = sapling.Grow(ctx, ds, names)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(5)
			}
			config.Logf("Done")
			config.Logf("%v", t)
			err = outputTree(config.output, t)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
			if config.storeURL != "" {
				err = storeTree(ctx, config, t)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(7)
				}
			}
		},
	}
	config.setFlags(cmd)
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the grown tree will be written in JSON format (defaults to STDOUT)")
	cmd.PersistentFlags().IntVarP(&(config.workers), "workers", "w", 1, "number of workers growing independent subtrees in parallel")
	cmd.PersistentFlags().StringVar(&(config.storeURL), "store", "", "redis URL of a tree store to save the grown tree to")
	cmd.PersistentFlags().StringVar(&(config.storeName), "store-name", "", "name to save the grown tree under on the tree store (required with store)")
	return cmd
}

func storeTree(ctx context.Context, config *growCmdConfig, t *tree.Tree) error {
	if config.storeName == "" {
		return fmt.Errorf("required store-name flag was not set")
	}
	opts, err := redis.ParseURL(config.storeURL)
	if err != nil {
		return fmt.Errorf("parsing store url: %v", err)
	}
	store := redisstore.New("sapling", redis.NewClient(opts))
	defer store.Close(ctx)
	config.Logf("Saving tree as %s on %s ...", config.storeName, config.storeURL)
	return store.Save(ctx, config.storeName, t)
}

func outputTree(outputPath string, t *tree.Tree) error {
	var f *os.File
	var err error
	if outputPath == "" {
		f = os.Stdout
	} else {
		f, err = os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	return treejson.WriteTree(f, t)
}

func loadTree(treePath string) (*tree.Tree, error) {
	f, err := os.Open(treePath)
	if err != nil {
		return nil, fmt.Errorf("opening tree at %s: %v", treePath, err)
	}
	defer f.Close()
	t, err := treejson.ReadTree(f)
	if err != nil {
		return nil, fmt.Errorf("parsing tree at %s: %v", treePath, err)
	}
	return t, nil
}

func parseSampleArgs(args []string) (exemplar.Values, error) {
	values := exemplar.Values{}
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("parsing %s: expected attribute=value", arg)
		}
		values[parts[0]] = parts[1]
	}
	return values, nil
}
