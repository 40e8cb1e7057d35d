package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/magillus/flutter-fimber/logger"
)

func newEmitCommand(e *env) *cobra.Command {
	var level, tag, ex, prefix, postfix string

	cmd := &cobra.Command{
		Use:   "emit [message...]",
		Short: "Send a single log call",
		Example: `  fimber emit --level E --tag net --ex "Timeout" conn failed
  fimber --sink zap emit -l W slow frame`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, sink, err := e.dispatcher()
			if err != nil {
				return err
			}
			defer e.closeSink(sink)

			log := logger.NewBuilder().
				WithCaller(d).
				WithTag(tag).
				WithPrefix(prefix).
				WithPostfix(postfix).
				Build()

			var exErr error
			if ex != "" {
				exErr = errors.New(ex)
			}
			return log.Log(level, strings.Join(args, " "), exErr)
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "I", "level code: V|D|I|W|E|F|WTF")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "tag (default: flutter)")
	cmd.Flags().StringVar(&ex, "ex", "", "exception dump appended on a second line")
	cmd.Flags().StringVar(&prefix, "prefix", "", "text written before the message")
	cmd.Flags().StringVar(&postfix, "postfix", "", "text written after the message")
	return cmd
}
