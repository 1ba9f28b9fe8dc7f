package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/rshade/carbonroute/internal/cli/pagination"
	"github.com/rshade/carbonroute/internal/config"
	"github.com/rshade/carbonroute/internal/routes"
	"github.com/rshade/carbonroute/internal/tui"
)

// routeListOutput is the JSON shape of routes list.
type routeListOutput struct {
	Routes     []routes.Route  `json:"routes"`
	Pagination pagination.Meta `json:"pagination"`
}

// NewRoutesListCmd creates the routes list command.
func NewRoutesListCmd() *cobra.Command {
	var page pagination.Params

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List known routes",
		Example: `  carbonroute routes list --sort distance:desc --limit 5
  carbonroute routes list --page 2 --page-size 10 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if err = page.Validate(); err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			all := a.index.Routes()
			if page.Sort != "" {
				field, order, sortErr := pagination.ParseSort(page.Sort)
				if sortErr != nil {
					return sortErr
				}
				if all, err = (pagination.RouteSorter{}).Sort(all, field, order); err != nil {
					return err
				}
			}
			meta := pagination.NewMeta(page, len(all))
			window := pagination.Apply(page, all)

			switch format {
			case config.FormatJSON:
				return writeJSON(cmd.OutOrStdout(), routeListOutput{Routes: window, Pagination: meta})
			case config.FormatNDJSON:
				return writeNDJSON(cmd.OutOrStdout(), window)
			}

			f := a.formatter
			rows := make([][]string, len(window))
			for i, r := range window {
				rows[i] = []string{r.Origin, r.Destination, f.FormatFloat(r.DistanceKm, 1)}
			}
			t := newTable(f.T("Route"), "", "km").Rows(rows...)
			out := t.String()
			if meta.TotalPages > 1 {
				out += "\n" + tui.SubtleStyle.Render(fmt.Sprintf("%d/%d (%d)", meta.CurrentPage, meta.TotalPages, meta.TotalItems))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	addOutputFlag(cmd)
	page.Register(cmd, "sort by origin, destination or distance, with optional :asc or :desc")
	return cmd
}

// NewRoutesFindCmd creates the routes find command.
func NewRoutesFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "find <origin> <destination>",
		Short:   "Distance between two locations",
		Example: `  carbonroute routes find "rio de janeiro, rj" "SÃO PAULO, SP"`,
		Args:    cobra.ExactArgs(2), //nolint:mnd // origin and destination.
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			route, err := a.index.Lookup(args[0], args[1])
			if err != nil {
				return err
			}

			switch format {
			case config.FormatJSON:
				return writeJSON(cmd.OutOrStdout(), route)
			case config.FormatNDJSON:
				return writeNDJSON(cmd.OutOrStdout(), []any{route})
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s → %s: %s km\n",
				route.Origin, route.Destination, a.formatter.FormatFloat(route.DistanceKm, 1))
			return err
		},
	}
	addOutputFlag(cmd)
	return cmd
}

// NewRoutesLocationsCmd creates the routes locations command.
func NewRoutesLocationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List every known location, sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			locations := a.index.AllLocations()
			switch format {
			case config.FormatJSON:
				return writeJSON(cmd.OutOrStdout(), locations)
			case config.FormatNDJSON:
				return writeNDJSON(cmd.OutOrStdout(), locations)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(locations, "\n"))
			return err
		},
	}
	addOutputFlag(cmd)
	return cmd
}

// newTable returns a lipgloss table with the shared header style.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(tui.ColorBorder)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tui.HeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)
}
