package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/fastaslice/internal/cliconfig"
	"github.com/bft-labs/fastaslice/pkg/log"
)

const helpDescription = `
Slice protein FASTA files for parallel classification, and keep the records a
classifier predicted.

Commands:
  split   cut one FASTA file into at most N near-equal files of whole records
  filter  keep the records whose identifier is listed in a predictions file
  watch   split every FASTA file dropped into an inbox directory

Settings come from $HOME/.fastaslice/config.toml, FASTASLICE_* environment
variables and flags, in increasing order of precedence.
`

var exampleUsage = strings.TrimSpace(`
  fastaslice split uniprot_sprot.fasta -o pieces -s 100
  fastaslice filter uniprot_sprot.fasta -p predictions_out.txt --output transporters.fasta
  fastaslice watch --inbox /data/inbox -o /data/pieces -s 50
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// cli carries the configuration shared by every command.
type cli struct {
	cfg     cliconfig.Config
	cfgPath string
	stderr  io.Writer
	log     *log.ZerologAdapter

	// inputArg is set when the input came as a positional argument.
	inputArg bool
}

// load applies the config file and environment under the flags set on cmd,
// then builds the logger.
func (c *cli) load(cmd *cobra.Command) error {
	cfgFile := c.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	// Build set of changed flags
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
	if c.inputArg {
		changed["input"] = true
	}

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&c.cfg, fc, changed); err != nil {
			return err
		}
	}

	// FASTASLICE_* override the file but not explicit flags
	if err := cliconfig.ApplyEnvConfig(&c.cfg, changed); err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	c.log = cliconfig.Logger(c.stderr, c.cfg.Verbose)
	return nil
}

// positionalInput lets the first argument stand in for --input.
func (c *cli) positionalInput(args []string) {
	if len(args) > 0 {
		c.cfg.Input = args[0]
		c.inputArg = true
	}
}

// newRootCommand builds the command tree. Logs go to stderr.
func newRootCommand(stderr io.Writer) (*cobra.Command, *cli) {
	c := &cli{
		cfg:    cliconfig.DefaultConfig(),
		stderr: stderr,
		log:    cliconfig.Logger(stderr, false),
	}

	root := &cobra.Command{
		Use:           "fastaslice",
		Short:         "Split and filter FASTA files on whole-record boundaries",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&c.cfgPath, "config", "", "path to config file (default: $HOME/.fastaslice/config.toml)")
	root.PersistentFlags().BoolVarP(&c.cfg.Verbose, "verbose", "v", c.cfg.Verbose, "log input diagnostics and every matched record")

	root.AddCommand(
		newSplitCommand(c),
		newFilterCommand(c),
		newWatchCommand(c),
	)
	return root, c
}

func main() {
	root, c := newRootCommand(os.Stderr)
	if err := root.Execute(); err != nil {
		c.log.Error("fastaslice", log.Err(err))
		os.Exit(1)
	}
}
