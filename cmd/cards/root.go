package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mpsalisbury/cardcollection/internal/config"
	"github.com/mpsalisbury/cardcollection/internal/console"
	"github.com/mpsalisbury/cardcollection/pkg/registry"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	v   *viper.Viper
	cfg config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	root := &cobra.Command{
		Use:          "cards",
		Short:        "Collect playing cards and look them up by suit",
		Long:         `cards keeps a collection of unique playing cards in memory. Cards can be added, listed, found by suit and removed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd)
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false,
		"log registry activity to stderr")
	root.PersistentFlags().StringArray("card", nil,
		`card to start with, e.g. "Ace of Spades" or "as" (repeatable)`)

	_ = a.v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	_ = a.v.BindPFlag("card", root.PersistentFlags().Lookup("card"))

	root.AddCommand(
		a.demoCmd(),
		a.shellCmd(),
		a.addCmd(),
		a.findCmd(),
		a.listCmd(),
		a.suitsCmd(),
		a.removeCmd(),
	)
	return root
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	if f := cmd.Flags().Lookup("prompt"); f != nil {
		_ = a.v.BindPFlag("prompt", f)
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *app) logger(cmd *cobra.Command) *log.Logger {
	if !a.cfg.Verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(cmd.ErrOrStderr(), "cards: ", log.LstdFlags)
}

// newConsole builds a console over a registry holding the --card cards.
func (a *app) newConsole(cmd *cobra.Command, opts ...console.Option) (*console.Console, error) {
	logger := a.logger(cmd)
	initial, err := a.cfg.InitialCards()
	if err != nil {
		return nil, err
	}
	reg := registry.New()
	for _, c := range initial {
		if reg.Contains(c.Rank, c.Suit) {
			return nil, fmt.Errorf("initial cards: %s given twice", c)
		}
		if _, err := reg.Add(c.Rank, c.Suit); err != nil {
			return nil, fmt.Errorf("initial cards: %w", err)
		}
	}
	logger.Printf("starting with %d cards", reg.Len())
	opts = append([]console.Option{console.WithLogger(logger)}, opts...)
	return console.New(reg, cmd.OutOrStdout(), opts...), nil
}
