package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	merkle "github.com/estensen/sortedmerkle"
	"github.com/estensen/sortedmerkle/hashers"
)

// cmdContext carries the resolved configuration shared by every command.
type cmdContext struct {
	v   *viper.Viper
	log *slog.Logger
}

func newRootCommand() *cobra.Command {
	ctx := &cmdContext{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "merkle",
		Short: "Sorted-pair Merkle tree tool",
		Long: "Builds a Merkle tree over a set of leaves and produces or checks membership proofs. " +
			"Leaves are taken from the arguments, or from --file as one leaf per line, " +
			"or from a JSON document when --json-path is set.",
		// SilenceUsage is set to true -> https://github.com/spf13/cobra/issues/340
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(ctx.v.GetString("log-level"))); err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			ctx.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	f := cmd.PersistentFlags()
	f.String("hasher", hashers.Default, fmt.Sprintf("Hash function, one of %v", hashers.Names()))
	f.StringP("file", "f", "", "Read leaves from this file instead of the arguments")
	f.String("json-path", "", "Read leaves from the array at this gjson path of the --file JSON document")
	f.Int("concurrency", 1, "Goroutines used to hash each layer")
	f.String("log-level", "warn", "Log level (debug, info, warn, error)")

	ctx.v.SetEnvPrefix("MERKLE")
	ctx.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	ctx.v.AutomaticEnv()
	_ = ctx.v.BindPFlags(f)

	cmd.AddCommand(newRootHashCommand(ctx))
	cmd.AddCommand(newLeavesCommand(ctx))
	cmd.AddCommand(newProofCommand(ctx))
	cmd.AddCommand(newVerifyCommand(ctx))
	cmd.AddCommand(newPrintCommand(ctx))
	cmd.AddCommand(newHashersCommand())

	return cmd
}

func (c *cmdContext) hasher() (merkle.Hasher, error) {
	return hashers.Lookup(c.v.GetString("hasher"))
}

// tree builds the tree from the configured leaf source.
func (c *cmdContext) tree(args []string) (*merkle.Tree, error) {
	h, err := c.hasher()
	if err != nil {
		return nil, err
	}
	values, err := readLeaves(c.v.GetString("file"), c.v.GetString("json-path"), args)
	if err != nil {
		return nil, err
	}
	c.log.Info("Building tree", "leaves", len(values), "hasher", c.v.GetString("hasher"))

	return merkle.NewTree(values, h,
		merkle.WithLogger(c.log),
		merkle.WithConcurrency(c.v.GetInt("concurrency")),
	), nil
}

// leafHash hashes the raw --leaf value, or parses --leaf-hash.
func (c *cmdContext) leafHash(cmd *cobra.Command, h merkle.Hasher) (merkle.Hash, error) {
	raw, _ := cmd.Flags().GetString("leaf")
	hexHash, _ := cmd.Flags().GetString("leaf-hash")
	switch {
	case raw != "" && hexHash != "":
		return nil, fmt.Errorf("--leaf and --leaf-hash are mutually exclusive")
	case hexHash != "":
		parsed, err := merkle.ParseHash(hexHash)
		if err != nil {
			return nil, err
		}
		return merkle.HashFromBytes(parsed, h.Size())
	case raw != "":
		return h.Sum([]byte(raw)), nil
	default:
		return nil, fmt.Errorf("one of --leaf or --leaf-hash is required")
	}
}

func addLeafFlags(cmd *cobra.Command) {
	cmd.Flags().String("leaf", "", "Leaf value, hashed with the selected hasher")
	cmd.Flags().String("leaf-hash", "", "Leaf hash as hex")
}
