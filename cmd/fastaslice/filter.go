package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bft-labs/fastaslice/internal/adapters/fs"
	"github.com/bft-labs/fastaslice/internal/app"
	"github.com/bft-labs/fastaslice/pkg/fasta"
	"github.com/bft-labs/fastaslice/pkg/log"
)

func newFilterCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter [input]",
		Short: "Keep the FASTA records whose identifier is in a predictions file",
		Long: `Keep the FASTA records whose identifier is listed, one per line, in the
predictions file. Records are copied verbatim and in input order. A header
with no recognisable identifier aborts the run and no output file is left.
Output to stdout is buffered, so records beyond the buffer size may already
have been written when a later header aborts the run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.positionalInput(args)
			if err := c.load(cmd); err != nil {
				return err
			}
			cfg := c.cfg
			if err := cfg.ValidateFilter(); err != nil {
				return err
			}

			accepted, err := fs.LoadPredictionSet(cfg.Predictions)
			if err != nil {
				return err
			}
			c.log.Debug("predictions loaded",
				log.String("predictions", cfg.Predictions),
				log.Int("identifiers", accepted.Len()),
			)

			in, err := fasta.Open(cfg.Input)
			if err != nil {
				return err
			}
			defer in.Close()

			out, commit, err := openOutput(cfg.Output, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			_, err = app.NewFilter(nil, c.log).Run(ctx, in, out, accepted)
			return commit(err)
		},
	}

	cmd.Flags().StringVarP(&c.cfg.Input, "input", "i", c.cfg.Input, "FASTA file to filter, - for stdin")
	cmd.Flags().StringVarP(&c.cfg.Predictions, "predictions", "p", c.cfg.Predictions, "file of accepted identifiers, one per line")
	cmd.Flags().StringVar(&c.cfg.Output, "output", c.cfg.Output, "filtered FASTA destination, - for stdout")
	return cmd
}

// openOutput returns a buffered writer for path and a commit function that
// flushes and closes it. When the run failed, commit removes the partial file,
// and buffered stdout output is dropped instead of flushed.
func openOutput(path string, stdout io.Writer) (io.Writer, func(error) error, error) {
	if path == fasta.Stdin {
		bw := bufio.NewWriter(stdout)
		return bw, func(err error) error {
			if err != nil {
				return err
			}
			if ferr := bw.Flush(); ferr != nil {
				return fmt.Errorf("flush output: %w", ferr)
			}
			return nil
		}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	bw := bufio.NewWriter(f)
	return bw, func(err error) error {
		if err == nil {
			err = bw.Flush()
		}
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
			return err
		}
		return nil
	}, nil
}
