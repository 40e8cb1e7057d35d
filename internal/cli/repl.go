package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/magillus/flutter-fimber/codec"
	"github.com/magillus/flutter-fimber/core"
	"github.com/magillus/flutter-fimber/dispatch"
	"github.com/magillus/flutter-fimber/handler"
)

const replHelp = `Enter a JSON call, e.g. {"method":"log","args":{"level":"I","message":"hi"}}
Shortcuts:
  log <level> <tag> <message...>   send a log call
  version                          send getPlatformVersion
  detach                           detach the sink
  attach                           re-attach the sink
  stats                            show dispatcher counters
  help                             show this help
  exit                             leave the prompt`

func newReplCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Send calls interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "fimber> ",
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
			})
			if err != nil {
				return fmt.Errorf("failed to create readline: %w", err)
			}
			defer rl.Close()

			// Sink output goes through readline so it does not garble the prompt
			e.streams.Out = rl.Stdout()
			d, sink, err := e.dispatcher()
			if err != nil {
				return err
			}
			defer e.closeSink(sink)

			s := &session{d: d, sink: sink}
			fmt.Fprintln(rl.Stdout(), replHelp)
			for {
				line, err := rl.Readline()
				if err != nil {
					if errors.Is(err, readline.ErrInterrupt) {
						continue
					}
					if errors.Is(err, io.EOF) {
						return nil
					}
					return err
				}
				out, done := s.eval(line)
				if out != "" {
					fmt.Fprintln(rl.Stdout(), out)
				}
				if done {
					return nil
				}
			}
		},
	}
}

// session evaluates prompt lines against one dispatcher
type session struct {
	d    *dispatch.Dispatcher
	sink handler.Handler
}

// eval runs one line and returns the text to print and whether the
// session is over.
func (s *session) eval(line string) (string, bool) {
	input := strings.TrimSpace(line)
	if input == "" {
		return "", false
	}
	if strings.HasPrefix(input, "{") {
		call, err := codec.DecodeJSON([]byte(input))
		if err != nil {
			return reply(nil, err), false
		}
		return reply(s.d.Handle(call.Method, call.Args)), false
	}

	fields := strings.Fields(input)
	switch fields[0] {
	case "exit", "quit":
		return "", true
	case "help", "?":
		return replHelp, false
	case "version":
		return reply(s.d.Handle(dispatch.MethodGetPlatformVersion, nil)), false
	case "detach":
		s.d.Detach()
		return "sink detached", false
	case "attach":
		s.d.Attach(s.sink)
		return "sink attached", false
	case "stats":
		st := s.d.Stats()
		return fmt.Sprintf("dispatched=%d suppressed=%d unsupported=%d failed=%d",
			st.Dispatched, st.Suppressed, st.Unsupported, st.Failed), false
	case "log":
		if len(fields) < 4 {
			return "usage: log <level> <tag> <message...>", false
		}
		p := core.Payload{
			core.KeyLevel:   fields[1],
			core.KeyTag:     fields[2],
			core.KeyMessage: strings.Join(fields[3:], " "),
		}
		return reply(s.d.Handle(dispatch.MethodLog, p)), false
	default:
		return reply(s.d.Handle(fields[0], nil)), false
	}
}

func reply(res any, err error) string {
	return string(codec.AppendJSON(nil, codec.Reply{Result: res, Err: err}))
}
