package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magillus/flutter-fimber/dispatch"
)

func newVersionCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the host platform version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, sink, err := e.dispatcher()
			if err != nil {
				return err
			}
			defer e.closeSink(sink)

			v, err := d.Handle(dispatch.MethodGetPlatformVersion, nil)
			if err != nil {
				return err
			}
			fmt.Fprintln(e.streams.Out, v)
			return nil
		},
	}
}
