package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mpsalisbury/cardcollection/internal/config"
	"github.com/mpsalisbury/cardcollection/internal/console"
)

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through adding, finding, listing and removing cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			console.Demo(cmd.OutOrStdout(), console.WithLogger(a.logger(cmd)))
			return nil
		},
	}
}

func (a *app) shellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Read card commands from standard input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			var opts []console.Option
			if isTerminal(in) {
				opts = append(opts, console.WithPrompt(a.cfg.Prompt))
			}
			c, err := a.newConsole(cmd, opts...)
			if err != nil {
				return err
			}
			return c.Run(cmd.Context(), in)
		},
	}
	cmd.Flags().String("prompt", config.Defaults().Prompt, "prompt shown before each command when reading a terminal")
	return cmd
}

// isTerminal reports whether r is an interactive terminal. Piped input gets
// no prompt.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// execCmd runs a single console command with the positional args.
func (a *app) execCmd(use, short string, args cobra.PositionalArgs) *cobra.Command {
	verb, _, _ := strings.Cut(use, " ")
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newConsole(cmd)
			if err != nil {
				return err
			}
			return c.Exec(verb + " " + strings.Join(args, " "))
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	return a.execCmd("add <card>", "Add a card", cobra.RangeArgs(1, 3))
}

func (a *app) findCmd() *cobra.Command {
	return a.execCmd("find <suit>", "List the cards of a suit", cobra.ExactArgs(1))
}

func (a *app) listCmd() *cobra.Command {
	return a.execCmd("list", "List all cards", cobra.NoArgs)
}

func (a *app) suitsCmd() *cobra.Command {
	return a.execCmd("suits", "Count the cards held in each suit", cobra.NoArgs)
}

func (a *app) removeCmd() *cobra.Command {
	return a.execCmd("remove <card>", "Remove a card", cobra.RangeArgs(1, 3))
}
