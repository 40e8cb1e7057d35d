package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/magillus/flutter-fimber/dispatch"
	"github.com/magillus/flutter-fimber/handler"
	"github.com/magillus/flutter-fimber/internal/config"
)

// Streams are the standard streams a command reads from and writes to
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the process streams
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// env is the state shared by all subcommands
type env struct {
	streams Streams
	cfgPath string
	cfg     config.Config
	log     *zap.Logger
}

// NewRoot constructs the root fimber command
func NewRoot(s Streams) *cobra.Command {
	e := &env{streams: s, log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "fimber",
		Short:         "Dispatch boundary log calls to a native logger",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = e.log.Sync()
		},
	}
	root.SetIn(s.In)
	root.SetOut(s.Out)
	root.SetErr(s.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&e.cfgPath, "config", "", "config file (yaml or json)")
	pf.String("sink", "", "native sink: console|zap|zerolog|logrus|slog")
	pf.String("formatter", "", "record formatter: line|console|json")
	pf.String("log-level", "", "level of the command's own diagnostics")

	root.AddCommand(
		newRunCommand(e),
		newReplCommand(e),
		newEmitCommand(e),
		newVersionCommand(e),
	)
	return root
}

// Execute runs the fimber command with the process streams and returns the
// exit code.
func Execute() int {
	s := StdStreams()
	if err := NewRoot(s).Execute(); err != nil {
		fmt.Fprintln(s.Err, "fimber:", err)
		return 1
	}
	return 0
}

// load resolves the configuration: defaults, file, environment, flags
func (e *env) load(cmd *cobra.Command) error {
	cfg, err := config.Load(e.cfgPath)
	if err != nil {
		return err
	}
	config.FromEnv(&cfg)

	flags := cmd.Flags()
	if flags.Changed("sink") {
		cfg.Sink.Kind, _ = flags.GetString("sink")
	}
	if flags.Changed("formatter") {
		cfg.Formatter.Kind, _ = flags.GetString("formatter")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.cfg = cfg

	log, err := NewDiagnostics(cfg.Log, e.streams.Err)
	if err != nil {
		return err
	}
	e.log = log
	return nil
}

func (e *env) sinkWriter() io.Writer {
	if e.cfg.Sink.Output == "stderr" {
		return e.streams.Err
	}
	return e.streams.Out
}

// dispatcher builds a dispatcher with a fresh sink. The caller closes the
// returned sink.
func (e *env) dispatcher() (*dispatch.Dispatcher, handler.Handler, error) {
	sink, err := NewSink(e.cfg.Sink, e.sinkWriter())
	if err != nil {
		return nil, nil, err
	}
	f, err := NewFormatter(e.cfg.Formatter)
	if err != nil {
		return nil, nil, err
	}

	opts := []dispatch.Option{
		dispatch.WithFormatter(f),
		dispatch.WithLogger(e.log.Named("dispatch")),
	}
	if v := e.cfg.PlatformVersion; v != "" {
		opts = append(opts, dispatch.WithPlatformVersion(func() string { return v }))
	}

	e.log.Debug("dispatcher ready",
		zap.String("sink", e.cfg.Sink.Kind),
		zap.String("formatter", e.cfg.Formatter.Kind))
	return dispatch.New(sink, opts...), sink, nil
}

func (e *env) closeSink(h handler.Handler) {
	if err := h.Close(); err != nil {
		e.log.Debug("closing sink", zap.Error(err))
	}
}
