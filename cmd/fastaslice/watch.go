package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bft-labs/fastaslice/internal/adapters/fs"
	"github.com/bft-labs/fastaslice/internal/app"
	"github.com/bft-labs/fastaslice/pkg/log"
)

func newWatchCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Split every FASTA file written into an inbox directory",
		Long: `Watch an inbox directory and split every .fasta, .fa, .faa, .fas or .fna file
(optionally gzipped) into <out>/<name>/ once it stops changing. Files already
split are remembered in a ledger and skipped after a restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.load(cmd); err != nil {
				return err
			}
			cfg := c.cfg
			if err := cfg.ValidateWatch(); err != nil {
				return err
			}
			c.log.Info("configuration", log.Any("config", cfg))

			logger := c.log
			w := app.NewWatcher(app.WatcherConfig{
				InboxDir:      cfg.InboxDir,
				OutDir:        cfg.OutputDir,
				Pieces:        cfg.Pieces,
				DebounceDelay: cfg.Debounce,
			},
				app.NewSplitter(logger),
				fs.PieceDirFactory{},
				fs.NewLedgerFileRepository(cfg.LedgerDir),
				logger,
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err := w.Run(ctx)
			if ctx.Err() != nil {
				c.log.Info("received signal, stopped watching")
			}
			return err
		},
	}

	cmd.Flags().StringVar(&c.cfg.InboxDir, "inbox", c.cfg.InboxDir, "directory to watch for FASTA files")
	cmd.Flags().StringVarP(&c.cfg.OutputDir, "out", "o", c.cfg.OutputDir, "directory receiving one piece directory per input")
	cmd.Flags().IntVarP(&c.cfg.Pieces, "size", "s", c.cfg.Pieces, "maximum number of pieces per file")
	cmd.Flags().DurationVar(&c.cfg.Debounce, "debounce", c.cfg.Debounce, "quiet period before a written file is split")
	cmd.Flags().StringVar(&c.cfg.LedgerDir, "ledger-dir", c.cfg.LedgerDir, "directory holding the ledger (default: inbox)")
	return cmd
}
