package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vasalvit/svgpath"
	"github.com/vasalvit/svgpath/internal/config"
	"github.com/vasalvit/svgpath/internal/logger"
)

var errEmpty = errors.New("no valid path data found")

func Execute() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs cmd and restores the discarding logger afterwards, also when
// a command fails and cobra skips the post-run hooks.
func execute(cmd *cobra.Command) error {
	defer logger.Reset()
	return cmd.Execute()
}

type options struct {
	configPath string
	debug      bool
	strict     bool
	quiet      bool

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "svgmin [DATA...]",
		Short: "Minify SVG path data",
		Long: "Minify SVG path data given as arguments or on stdin.\n" +
			"Parsing stops at the first malformed token; the valid prefix is minified.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return minifyData(cmd, opts, input)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ./"+config.FileName+" if present)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to stderr")
	cmd.PersistentFlags().BoolVar(&opts.strict, "strict", false, "fail when no valid path data is found")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not print status messages")

	cmd.AddCommand(svgCmd(opts))
	cmd.AddCommand(versionCmd())
	return cmd
}

// setup loads the configuration, lets flags override it and installs the
// logger.
func (o *options) setup(cmd *cobra.Command) error {
	path, optional := o.configPath, false
	if path == "" {
		path, optional = config.FileName, true
	}
	cfg, err := config.Load(path, optional)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Log.Debug = o.debug
	}
	if flags.Changed("strict") {
		cfg.Strict = o.strict
	}
	o.cfg = cfg

	logger.Setup(logger.Config{
		Out:   cmd.ErrOrStderr(),
		Debug: cfg.Log.Debug,
		JSON:  cfg.Log.JSON,
	})
	logger.L().Debug("config.loaded", "path", path, "strict", cfg.Strict)
	return nil
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

func minifyData(cmd *cobra.Command, opts *options, input string) error {
	r := svgpath.MinifyResult(input)
	logger.L().Debug("minify.done",
		"commands", r.Commands,
		"in", len(r.Input),
		"out", len(r.Output),
		"saved", r.Saved(),
	)

	st := newStatus(cmd.ErrOrStderr(), opts.quiet)
	if r.Empty() {
		st.failure("Failed to minify selection.")
		if opts.cfg.Strict {
			return errEmpty
		}
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), r.Output); err != nil {
		return err
	}
	if !r.Empty() {
		st.success(fmt.Sprintf("Selection minified! (%d bytes saved)", r.Saved()))
	}
	return nil
}
