package main

import (
	"fmt"

	"bst_code/bst"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	cfgTarget = "target"
	cfgK      = "k"

	envPrefix = "BSTWALK"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "bstwalk",
		Short:        "query a binary search tree built from the given values",
		SilenceUsage: true,
	}
	root.AddCommand(
		newClosestCmd(v),
		newKthCmd(v),
		newPrintCmd(),
	)
	return root
}

func newClosestCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "closest --target T VALUE...",
		Short: "print the value closest to the target",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := parseTree(args)
			if err != nil {
				return err
			}
			closest, err := bst.FindClosestValue(tree, v.GetInt64(cfgTarget))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), closest)
			return nil
		},
	}
	cmd.Flags().Int64(cfgTarget, 0, "value to search for")
	_ = v.BindPFlag(cfgTarget, cmd.Flags().Lookup(cfgTarget))
	return cmd
}

func newKthCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kth --k K VALUE...",
		Short: "print the k-th largest value (k = 1 is the maximum)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := parseTree(args)
			if err != nil {
				return err
			}
			kth, err := bst.FindKthLargestValue(tree, v.GetUint64(cfgK))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), kth)
			return nil
		},
	}
	cmd.Flags().Uint64(cfgK, 1, "rank from the largest value, starting at 1")
	_ = v.BindPFlag(cfgK, cmd.Flags().Lookup(cfgK))
	return cmd
}

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print VALUE...",
		Short: "draw the tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := parseTree(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tree.String())
			return nil
		},
	}
}
