package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bft-labs/fastaslice/internal/adapters/fs"
	"github.com/bft-labs/fastaslice/internal/adapters/verify"
	"github.com/bft-labs/fastaslice/internal/app"
	"github.com/bft-labs/fastaslice/pkg/log"
)

func newSplitCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [input]",
		Short: "Split a FASTA file into at most --size files of whole records",
		Long: `Split a FASTA file into at most --size files named 1.fasta, 2.fasta, ...
Piece sizes differ by at most one record, larger pieces first. The output
directory is created when missing and must be empty. The number of files
written is printed on stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.positionalInput(args)
			if err := c.load(cmd); err != nil {
				return err
			}
			cfg := c.cfg
			if err := cfg.ValidateSplit(); err != nil {
				return err
			}
			if _, err := os.Stat(cfg.Input); err != nil {
				return fmt.Errorf("input: %w", err)
			}
			c.log.Debug("configuration", log.Any("config", cfg))

			sink, err := fs.PieceDirFactory{}.Open(cfg.OutputDir)
			if err != nil {
				return err
			}

			var opts []app.SplitterOption
			if cfg.Verify {
				opts = append(opts, app.WithVerifier(verify.NewBiogoVerifier()))
			}
			splitter := app.NewSplitter(c.log, opts...)

			res, err := splitter.Split(cmd.Context(), cfg.Input, cfg.Pieces, sink)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Plan.Pieces())
			return nil
		},
	}

	cmd.Flags().StringVarP(&c.cfg.Input, "input", "i", c.cfg.Input, "FASTA file to split (.gz is read transparently)")
	cmd.Flags().StringVarP(&c.cfg.OutputDir, "out", "o", c.cfg.OutputDir, "output directory, must be empty")
	cmd.Flags().IntVarP(&c.cfg.Pieces, "size", "s", c.cfg.Pieces, "maximum number of pieces")
	cmd.Flags().BoolVar(&c.cfg.Verify, "verify", c.cfg.Verify, "re-read every piece with an independent parser and check its record count")
	return cmd
}
