// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	monartist "github.com/pnkfelix/mon-artist"
	"github.com/pnkfelix/mon-artist/internal/config"
	"github.com/pnkfelix/mon-artist/internal/logging"
)

// app carries what every subcommand shares.
type app struct {
	verbosity  int
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "mona",
		Short: "Render ASCII diagrams to SVG with a rule table",
		Long: logo + `
mona converts ASCII-art diagrams into SVG. Every character is matched,
together with its neighbors, against an ordered rule table; the first
rule that holds decides what is drawn for that cell.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "TOML file with rendering settings")

	root.AddCommand(
		newRenderCmd(a),
		newRunCmd(a),
		newMatchCmd(a),
		newCheckCmd(a),
		newDescribeCmd(a),
	)
	return root
}

func (a *app) renderOptions(name string) monartist.RenderOptions {
	return monartist.RenderOptions{
		Scale:      monartist.Scale{X: a.cfg.XScale, Y: a.cfg.YScale},
		FontFamily: a.cfg.FontFamily,
		FontSize:   a.cfg.FontSize,
		NoBlur:     a.cfg.NoBlur,
		Name:       name,
	}
}

// readInput returns the contents of the file in, or of r for "-".
func readInput(in string, r io.Reader) ([]byte, error) {
	if in == "-" {
		return io.ReadAll(r)
	}
	return os.ReadFile(in)
}

// render converts the diagram at in (or r for "-") and writes the SVG to out
// (or w for "-").
func (a *app) render(ctx context.Context, t *monartist.Table, in, out string, r io.Reader, w io.Writer) error {
	input, err := readInput(in, r)
	if err != nil {
		return err
	}
	svg, err := monartist.Render(ctx, input, t, a.cfg.TabWidth, a.renderOptions(in), monartist.TraceOptions{Workers: a.cfg.Workers})
	if err != nil {
		return err
	}
	if out == "-" {
		_, err := w.Write(svg)
		return err
	}
	return os.WriteFile(out, svg, 0666)
}
