package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vdptrace/internal/config"
	"vdptrace/internal/lister"
	"vdptrace/internal/logging"
	"vdptrace/internal/names"
	"vdptrace/internal/printers"
	"vdptrace/internal/va"
	"vdptrace/internal/vdp"
)

const unknownName = "(unknown)"

var errUnknown = errors.New("unknown identifier")

type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "vdptrace",
		Short: "Dump VDPAU and VA-API decode parameter records",
		Long: `vdptrace renders decode parameter records the way the driver trace
prints them, and resolves the coded identifiers seen at the VA-API/VDPAU
boundary to their names.

Records are read from YAML fixtures, one record per document.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			l, err := logging.New(cfg.Log, a.verbose)
			if err != nil {
				return err
			}
			a.logger = l
			logging.SetLogger(l)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(a.dumpCmd())
	root.AddCommand(a.kindsCmd())
	root.AddCommand(fourccCmd())
	root.AddCommand(codecCmd())
	root.AddCommand(bufferTypeCmd())
	return root
}

func (a *app) dumpCmd() *cobra.Command {
	var stats bool
	cmd := &cobra.Command{
		Use:   "dump <fixture.yaml>...",
		Short: "Render every record of the given fixtures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.dump(cmd, args, stats)
		},
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "Print the number of records dumped per kind")
	return cmd
}

func (a *app) dump(cmd *cobra.Command, fixtures []string, stats bool) (err error) {
	var w io.Writer
	switch a.cfg.Trace.Output {
	case config.OutputStdout:
		w = cmd.OutOrStdout()
	case config.OutputStderr:
		w = cmd.ErrOrStderr()
	default:
		f, closeFn, openErr := a.cfg.Trace.Open()
		if openErr != nil {
			return openErr
		}
		defer closeOutput(closeFn, &err)
		w = f
	}

	sink := a.cfg.Trace.NewSink(w)
	if a.cfg.Trace.Mirror {
		sink.SetMessageLogger(a.logger)
	}
	return lister.Run(lister.Config{
		Fixtures: fixtures,
		Stats:    stats,
		Sink:     sink,
		Logger:   a.logger,
	})
}

// closeOutput closes a trace file and joins its error into *err.
func closeOutput(closeFn func() error, err *error) {
	if cerr := closeFn(); cerr != nil {
		*err = errors.Join(*err, fmt.Errorf("failed to close trace output: %w", cerr))
	}
}

func (a *app) kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the record kinds compiled in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			reg := printers.DefaultRegister()
			for _, kind := range reg.Kinds() {
				d, err := reg.ByKind(kind)
				if err != nil {
					return err
				}
				codecs := ""
				for i, c := range d.Codecs {
					if i > 0 {
						codecs += ","
					}
					codecs += names.Codec(c)
				}
				if codecs == "" {
					fmt.Fprintln(out, kind)
					continue
				}
				fmt.Fprintf(out, "%s (%s)\n", kind, codecs)
			}
			return nil
		},
	}
}

func fourccCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fourcc <value>",
		Short: "Print the four characters packed into a FOURCC value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseUint(args[0], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid FOURCC value %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), names.FourCC(uint32(v)))
			return nil
		},
	}
}

func codecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codec <id>",
		Short: "Print the name of a VDPAU decoder codec",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid codec %q: %w", args[0], err)
			}
			return printName(cmd.OutOrStdout(), names.Codec(vdp.Codec(id)), "codec", id)
		},
	}
}

func bufferTypeCmd() *cobra.Command {
	var version string
	cmd := &cobra.Command{
		Use:   "buffer-type <id>",
		Short: "Print the name of a VA-API buffer type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid buffer type %q: %w", args[0], err)
			}
			v := va.APIVersion
			if version != "" {
				if v, err = va.ParseVersion(version); err != nil {
					return err
				}
			}
			return printName(cmd.OutOrStdout(), names.BufferTypeAt(v, va.BufferType(id)), "buffer type", id)
		},
	}
	cmd.Flags().StringVar(&version, "va-version", "", "VA-API version to resolve against (default: compiled level)")
	return cmd
}

func printName(w io.Writer, name, what string, id int64) error {
	if name == "" {
		fmt.Fprintln(w, unknownName)
		return fmt.Errorf("%w: %s %d", errUnknown, what, id)
	}
	fmt.Fprintln(w, name)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
