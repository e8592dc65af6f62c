package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	merkle "github.com/estensen/sortedmerkle"
	"github.com/estensen/sortedmerkle/hashers"
)

var errInvalidProof = errors.New("invalid proof")

func newRootHashCommand(ctx *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "root [leaves...]",
		Short: "Print the root of the tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := ctx.tree(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tree.Root())
			return nil
		},
	}
}

func newLeavesCommand(ctx *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "leaves [leaves...]",
		Short: "Print the sorted leaf hashes",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := ctx.tree(args)
			if err != nil {
				return err
			}
			for _, leaf := range tree.Leaves() {
				fmt.Fprintln(cmd.OutOrStdout(), leaf)
			}
			return nil
		},
	}
}

func newProofCommand(ctx *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proof [leaves...]",
		Short: "Print the inclusion proof of a leaf as a JSON array",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := ctx.tree(args)
			if err != nil {
				return err
			}
			leaf, err := ctx.leafHash(cmd, tree.Hasher())
			if err != nil {
				return err
			}
			proof, err := tree.ProveLeaf(leaf)
			if err != nil {
				return err
			}

			out, err := json.Marshal(struct {
				Root  merkle.Hash  `json:"root"`
				Leaf  merkle.Hash  `json:"leaf"`
				Proof merkle.Proof `json:"proof"`
			}{tree.Root(), leaf, proof})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	addLeafFlags(cmd)
	return cmd
}

func newVerifyCommand(ctx *cmdContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a proof of a leaf against a root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := ctx.hasher()
			if err != nil {
				return err
			}
			leaf, err := ctx.leafHash(cmd, h)
			if err != nil {
				return err
			}

			rootHex, _ := cmd.Flags().GetString("root")
			root, err := merkle.ParseHash(rootHex)
			if err != nil {
				return fmt.Errorf("root: %w", err)
			}
			var proof merkle.Proof
			proofJSON, _ := cmd.Flags().GetString("proof")
			if err := json.Unmarshal([]byte(proofJSON), &proof); err != nil {
				return fmt.Errorf("proof: %w", err)
			}

			if !merkle.Verify(h, proof, leaf, root) {
				return errInvalidProof
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	addLeafFlags(cmd)
	cmd.Flags().String("root", "", "Expected root as hex")
	cmd.Flags().String("proof", "[]", "Proof as a JSON array of hex hashes")
	_ = cmd.MarkFlagRequired("root")
	return cmd
}

func newPrintCommand(ctx *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "print [leaves...]",
		Short: "Print the tree as an indented diagram",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := ctx.tree(args)
			if err != nil {
				return err
			}
			return tree.Render(cmd.OutOrStdout())
		},
	}
}

func newHashersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hashers",
		Short: "List the available hash functions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range hashers.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
