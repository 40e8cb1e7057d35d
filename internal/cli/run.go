package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/magillus/flutter-fimber/codec"
)

func newRunCommand(e *env) *cobra.Command {
	var input, format string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Serve calls read from a stream",
		Long: "Reads calls from a file or stdin, dispatches them and writes one reply per call to stdout.\n" +
			"zstd compressed input is detected automatically.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("input") {
				e.cfg.Input.Path = input
			}
			if cmd.Flags().Changed("format") {
				e.cfg.Input.Format = format
			}
			f, err := codec.ParseFormat(e.cfg.Input.Format)
			if err != nil {
				return err
			}

			r, err := e.openInput()
			if err != nil {
				return err
			}
			defer r.Close()

			d, sink, err := e.dispatcher()
			if err != nil {
				return err
			}
			defer e.closeSink(sink)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			// A second signal falls through to the default handler
			defer context.AfterFunc(ctx, stop)()

			err = codec.Serve(ctx, codec.NewDecoder(r, f), codec.NewEncoder(e.streams.Out, f), d)
			st := d.Stats()
			e.log.Info("input drained",
				zap.Uint64("dispatched", st.Dispatched),
				zap.Uint64("suppressed", st.Suppressed),
				zap.Uint64("unsupported", st.Unsupported),
				zap.Uint64("failed", st.Failed))
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", `input file, "-" for stdin`)
	cmd.Flags().StringVarP(&format, "format", "f", "", "input encoding: json|cbor")
	return cmd
}

func (e *env) openInput() (io.ReadCloser, error) {
	if p := e.cfg.Input.Path; p != "" && p != "-" {
		return codec.Open(p)
	}
	return codec.NewReader(e.streams.In)
}
