package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sapling-ml/sapling/tree"
	"github.com/sapling-ml/sapling/tree/redisstore"
	"github.com/spf13/cobra"
	redis "gopkg.in/redis.v5"
)

type predictCmdConfig struct {
	*rootCmdConfig
	treeInput string
	storeURL  string
	storeName string
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict attribute=value ...",
		Short: "Classify an instance with a grown tree",
		Long:  `Use a grown tree to predict the label for an instance given as attribute=value arguments. If the tree has never observed one of the instance's values at the decision it reaches, no label is predicted.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := context.Background()
			t, err := config.tree(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			values, err := parseSampleArgs(args)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			label, ok := t.Predict(values)
			if !ok {
				fmt.Println("no prediction for the given instance")
				os.Exit(4)
			}
			fmt.Println(label)
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file from which the tree will be read and parsed as JSON")
	cmd.PersistentFlags().StringVar(&(config.storeURL), "store", "", "redis URL of a tree store to load the tree from instead of a file")
	cmd.PersistentFlags().StringVar(&(config.storeName), "store-name", "", "name the tree is saved under on the tree store (required with store)")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.treeInput == "" && pcc.storeURL == "" {
		return fmt.Errorf("required tree or store flag was not set")
	}
	if pcc.storeURL != "" && pcc.storeName == "" {
		return fmt.Errorf("required store-name flag was not set")
	}
	return nil
}

func (pcc *predictCmdConfig) tree(ctx context.Context) (*tree.Tree, error) {
	if pcc.storeURL == "" {
		return loadTree(pcc.treeInput)
	}
	opts, err := redis.ParseURL(pcc.storeURL)
	if err != nil {
		return nil, fmt.Errorf("parsing store url: %v", err)
	}
	store := redisstore.New("sapling", redis.NewClient(opts))
	defer store.Close(ctx)
	t, err := store.Load(ctx, pcc.storeName)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("no tree saved as %s on %s", pcc.storeName, pcc.storeURL)
	}
	return t, nil
}
