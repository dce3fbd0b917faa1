// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package main

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	monartist "github.com/pnkfelix/mon-artist"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		table  string
		output string
		scaleX int
		scaleY int
		font   string
		noBlur bool
	)
	cmd := &cobra.Command{
		Use:   "render [input]",
		Short: "Render one diagram",
		Long: `Render reads a diagram from the input file, or stdin when the input is
"-" or missing, and writes SVG to the output file or stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := "-"
			if len(args) == 1 {
				in = args[0]
			}
			flags := cmd.Flags()
			if flags.Changed("table") {
				a.cfg.Table = table
			}
			if flags.Changed("scale-x") {
				a.cfg.XScale = scaleX
			}
			if flags.Changed("scale-y") {
				a.cfg.YScale = scaleY
			}
			if flags.Changed("font") {
				a.cfg.FontFamily = font
			}
			if flags.Changed("no-blur") {
				a.cfg.NoBlur = noBlur
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			t, err := monartist.LoadTable(a.cfg.Table)
			if err != nil {
				return err
			}
			return errors.Annotatef(a.render(cmd.Context(), t, in, output, cmd.InOrStdin(), cmd.OutOrStdout()), "rendering %s", in)
		},
	}
	cmd.Flags().StringVarP(&table, "table", "t", "", "Rule file or built-in table name (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "-", `Path to output SVG file. If set to "-" (hyphen), stdout is used.`)
	cmd.Flags().IntVarP(&scaleX, "scale-x", "x", 0, "X grid scale in pixels.")
	cmd.Flags().IntVarP(&scaleY, "scale-y", "y", 0, "Y grid scale in pixels.")
	cmd.Flags().StringVarP(&font, "font", "f", "", "Font family to use.")
	cmd.Flags().BoolVarP(&noBlur, "no-blur", "b", false, "Disable drop-shadow blur.")
	return cmd
}

// newRunCmd renders "table input output" triples in one invocation.
func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <table> <input> <output> [<table> <input> <output>...]",
		Short: "Render several diagrams, each with its own table",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || len(args)%3 != 0 {
				return fmt.Errorf("expected table/input/output triples, got %d arguments", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			for i := 0; i < len(args); i += 3 {
				table, in, out := args[i], args[i+1], args[i+2]
				fmt.Fprintf(cmd.OutOrStdout(), "processing %s to %s via %s\n", in, out, table)
				t, err := monartist.LoadTable(table)
				if err != nil {
					return err
				}
				if out == "-" {
					return fmt.Errorf("run writes files; use render for stdout")
				}
				if err := a.render(cmd.Context(), t, in, out, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
					return errors.Annotatef(err, "rendering %s", in)
				}
				log.Info().Str("input", in).Str("output", out).Str("table", t.Name()).Msg("Rendered diagram")
			}
			return nil
		},
	}
}
