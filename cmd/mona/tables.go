// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	monartist "github.com/pnkfelix/mon-artist"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <rules-file>...",
		Short: "Parse rule files and verify their anchors and attributes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			geom := monartist.Scale{X: a.cfg.XScale, Y: a.cfg.YScale}
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				t, err := monartist.ParseTable(path, string(data))
				if err != nil {
					return fmt.Errorf("%s:%w", path, err)
				}
				if err := monartist.CheckAnchors(t, geom); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if err := monartist.CheckAttrs(t); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, %d rules\n", path, t.Len())
			}
			return nil
		},
	}
}

func newDescribeCmd(a *app) *cobra.Command {
	var asYAML, listRules bool
	cmd := &cobra.Command{
		Use:   "describe [table]",
		Short: "Summarize a rule table",
		Long: `Describe prints how many rules of each shape a table holds. Without an
argument it lists the built-in tables.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, n := range monartist.BuiltinTableNames() {
					fmt.Fprintln(w, n)
				}
				return nil
			}
			t, err := monartist.LoadTable(args[0])
			if err != nil {
				return err
			}
			if listRules {
				for i, r := range t.Rules() {
					fmt.Fprintf(w, "%d %s\n", i+1, r)
				}
			}
			return writeSummary(w, t.Describe(), asYAML)
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the summary as YAML")
	cmd.Flags().BoolVar(&listRules, "rules", false, "List every rule before the summary")
	return cmd
}

func writeSummary(w io.Writer, s monartist.TableSummary, asYAML bool) error {
	if asYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	}
	kinds := make([]string, 0, len(s.ByKind))
	for k := range s.ByKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	fmt.Fprintf(w, "%s: %d rules\n", s.Name, s.Rules)
	for _, k := range kinds {
		fmt.Fprintf(w, "  %-5s %d\n", k, s.ByKind[k])
	}
	return nil
}

func newMatchCmd(a *app) *cobra.Command {
	var table string
	cmd := &cobra.Command{
		Use:   "match [input]",
		Short: "Show the rule governing every cell of a diagram",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := "-"
			if len(args) == 1 {
				in = args[0]
			}
			if table == "" {
				table = a.cfg.Table
			}
			t, err := monartist.LoadTable(table)
			if err != nil {
				return err
			}
			input, err := readInput(in, cmd.InOrStdin())
			if err != nil {
				return err
			}
			g, err := monartist.NewGrid(input, a.cfg.TabWidth)
			if err != nil {
				return err
			}
			hits, err := t.MatchGrid(cmd.Context(), g, a.cfg.Workers)
			if err != nil {
				return err
			}
			geom := monartist.Scale{X: a.cfg.XScale, Y: a.cfg.YScale}
			size := g.Size()
			w := cmd.OutOrStdout()
			for i, h := range hits {
				if h == nil {
					continue
				}
				p := monartist.Point{X: i % size.X, Y: i / size.X}
				res, err := h.Resolve(p, geom)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s %q %s #%d %s %q\n", p, g.At(p), res.Kind, res.Rule+1, res.Heading, res.Draw)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&table, "table", "t", "", "Rule file or built-in table name (default from config)")
	return cmd
}
