// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/toeirei/dashui/internal/i18n"
	"github.com/toeirei/dashui/internal/logging"
	"github.com/toeirei/dashui/internal/record"
	"github.com/toeirei/dashui/internal/source"
	"github.com/toeirei/dashui/ui/tui"
	"github.com/toeirei/dashui/ui/tui/models/components/datatable"
	"github.com/toeirei/dashui/util/slicest"
	"golang.org/x/term"
)

const (
	loadTimeout  = 30 * time.Second
	staticWidth  = 100
	staticChrome = 4
)

type tableFlags struct {
	spec     source.Spec
	single   bool
	noSelect bool
	static   bool
}

func newTableCmd(a *app) *cobra.Command {
	var f tableFlags
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show records from a file or SQL query in the data table",
		Long: `Loads records from a JSON, YAML or CSV file (optionally .zst compressed)
or from a SQL query and shows them in the data table. Every column is
sortable. The selected rows are printed as JSON on exit.

Without flags the source configured under "source" is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := mergeSpec(f.spec, source.Spec(a.cfg.Source))
			if spec.IsZero() {
				return source.ErrNoSource
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), loadTimeout)
			rows, fields, err := source.Load(ctx, spec)
			cancel()
			if err != nil {
				return err
			}
			logging.Debugf("table: loaded %d rows with %d fields", len(rows), len(fields))

			selectable := a.cfg.Table.Selectable && !f.noSelect
			opts := []datatable.NewOpt{
				datatable.WithSelectable(selectable),
				datatable.WithMultiSelect(a.cfg.Table.MultiSelect && !f.single),
				datatable.WithTheme(a.theme()),
				datatable.WithComparer(record.NewComparer(i18n.Tag())),
			}
			if a.cfg.Table.PageSize > 0 {
				opts = append(opts, datatable.WithHeight(a.cfg.Table.PageSize))
			}
			table := datatable.New(datatable.ColumnsFor(fields, true), rows, opts...)

			out := cmd.OutOrStdout()
			if f.static || !isTerminal(out) {
				_, err := fmt.Fprintln(out, tui.RenderStatic(table, staticWidth, len(rows)+staticChrome))
				return err
			}

			err = a.withLog(func() error {
				return tui.RunModel(cmd.Context(), table)
			})
			if err != nil {
				return err
			}
			return printSelection(out, table.Selected())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.spec.File, "file", "", "data file (.json, .yaml, .yml, .csv, optionally .zst)")
	flags.StringVar(&f.spec.Driver, "driver", "", "sql driver (sqlite, postgres, mysql)")
	flags.StringVar(&f.spec.DSN, "dsn", "", "sql data source name")
	flags.StringVar(&f.spec.Query, "query", "", "sql query")
	flags.BoolVar(&f.single, "single", false, "allow only one selected row")
	flags.BoolVar(&f.noSelect, "no-select", false, "disable row selection")
	flags.BoolVar(&f.static, "static", false, "print the table once instead of starting the TUI")
	return cmd
}

// mergeSpec prefers the flags. Configured values fill in what the flags
// leave empty unless the flags name a file.
func mergeSpec(flags, configured source.Spec) source.Spec {
	if flags.File != "" {
		return source.Spec{File: flags.File}
	}
	if flags.Driver == "" {
		flags.Driver = configured.Driver
	}
	if flags.DSN == "" {
		flags.DSN = configured.DSN
	}
	if flags.Query == "" {
		flags.Query = configured.Query
		if flags.Query == "" {
			flags.File = configured.File
		}
	}
	return flags
}

func printSelection(w io.Writer, selected []*record.Map) error {
	if len(selected) == 0 {
		return nil
	}
	data, err := json.MarshalIndent(slicest.Map(selected, (*record.Map).Values), "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode selection: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
