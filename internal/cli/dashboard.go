package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietddude/touradmin/internal/control"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the overview: totals, pipeline and latest leads",
	Args:  cobra.NoArgs,
	RunE:  run(runDashboard),
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(s *session, cmd *cobra.Command, args []string) error {
	scope := control.NewScope(s.ctx)
	defer scope.Close()

	d, ok, err := control.Fetch(scope, func(ctx context.Context) (*control.Dashboard, error) {
		return control.LoadDashboard(ctx, s.svc)
	})
	if !ok {
		return s.ctx.Err()
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := newTable(out, "TOURS", "PUBLISHED", "USERS", "BLOGS", "LEADS")
	row(w, d.Tours, d.Published, d.Users, d.Blogs, d.LeadStats.Total)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	printLeadStats(cmd, &d.LeadStats)

	if len(d.RecentLeads) > 0 {
		fmt.Fprintln(out, "\nLatest leads")
		w = newTable(out, "ID", "NAME", "SOURCE", "STATUS", "SCORE", "ASSIGNED", "CREATED")
		for _, l := range d.RecentLeads {
			writeLeadRow(w, l)
		}
		return w.Flush()
	}
	return nil
}
