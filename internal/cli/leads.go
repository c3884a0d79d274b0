package cli

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vietddude/touradmin/internal/control"
	"github.com/vietddude/touradmin/internal/core/domain"
	"github.com/vietddude/touradmin/internal/service"
)

var (
	leadFilter    service.LeadFilter
	leadFrom      string
	leadTo        string
	watchInterval time.Duration
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Work the CRM lead pipeline",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List leads",
	Args:  cobra.NoArgs,
	RunE:  run(runLeadsList),
}

var leadsGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a lead with its notes",
	Args:  cobra.ExactArgs(1),
	RunE:  run(runLeadsGet),
}

var leadsStatusCmd = &cobra.Command{
	Use:   "status [id] [new|contacted|qualified|proposal|won|lost]",
	Short: "Move a lead to another stage",
	Args:  cobra.ExactArgs(2),
	RunE:  run(runLeadsStatus),
}

var leadsAssignCmd = &cobra.Command{
	Use:   "assign [id] [admin-id]",
	Short: "Assign a lead to an admin",
	Args:  cobra.ExactArgs(2),
	RunE:  run(runLeadsAssign),
}

var leadsNoteCmd = &cobra.Command{
	Use:   "note [id] [text]",
	Short: "Add a follow-up note to a lead",
	Args:  cobra.MinimumNArgs(2),
	RunE:  run(runLeadsNote),
}

var leadsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show pipeline statistics",
	Args:  cobra.NoArgs,
	RunE:  run(runLeadsStats),
}

var leadsWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print new leads as they arrive",
	Args:  cobra.NoArgs,
	RunE:  run(runLeadsWatch),
}

func init() {
	for _, c := range []*cobra.Command{leadsListCmd, leadsWatchCmd} {
		f := c.Flags()
		addListFlags(f, &leadFilter.ListParams)
		f.StringVar((*string)(&leadFilter.Status), "status", "", "pipeline stage")
		f.StringVar(&leadFilter.Source, "source", "", "lead source")
		f.StringVar(&leadFilter.AssignedTo, "assigned-to", "", "admin id")
		f.StringVar(&leadFrom, "from", "", "created on or after (YYYY-MM-DD)")
		f.StringVar(&leadTo, "to", "", "created on or before (YYYY-MM-DD)")
	}
	leadsStatsCmd.Flags().StringVar(&leadFrom, "from", "", "start date (YYYY-MM-DD)")
	leadsStatsCmd.Flags().StringVar(&leadTo, "to", "", "end date (YYYY-MM-DD)")
	leadsWatchCmd.Flags().DurationVar(&watchInterval, "interval", 30*time.Second, "poll interval")

	leadsCmd.AddCommand(leadsListCmd, leadsGetCmd, leadsStatusCmd, leadsAssignCmd,
		leadsNoteCmd, leadsStatsCmd, leadsWatchCmd)
	rootCmd.AddCommand(leadsCmd)
}

func buildLeadFilter() (service.LeadFilter, error) {
	f := leadFilter
	var err error
	if f.From, err = parseDate(leadFrom); err != nil {
		return f, err
	}
	if f.To, err = parseDate(leadTo); err != nil {
		return f, err
	}
	return f, nil
}

func runLeadsList(s *session, cmd *cobra.Command, args []string) error {
	filter, err := buildLeadFilter()
	if err != nil {
		return err
	}

	list, err := s.svc.CRM.ListLeads(s.ctx, filter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := newTable(out, "ID", "NAME", "SOURCE", "STATUS", "SCORE", "ASSIGNED", "CREATED")
	for _, l := range list.Leads {
		writeLeadRow(w, l)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	printPagination(out, list.Pagination)
	return nil
}

func writeLeadRow(w io.Writer, l domain.Lead) {
	row(w, l.ID, l.Name, orDash(l.Source), l.Status, l.Score, orDash(l.AssignedTo), formatDate(l.CreatedAt))
}

func runLeadsGet(s *session, cmd *cobra.Command, args []string) error {
	l, err := s.svc.CRM.GetLead(s.ctx, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  [%s, score %d]\n", l.Name, l.Status, l.Score)
	fmt.Fprintf(out, "Email:    %s\nPhone:    %s\nSource:   %s\nAssigned: %s\n",
		orDash(l.Email), orDash(l.Phone), orDash(l.Source), orDash(l.AssignedTo))
	if l.Message != "" {
		fmt.Fprintf(out, "\n%s\n", l.Message)
	}
	if len(l.Notes) > 0 {
		fmt.Fprintln(out)
		w := newTable(out, "DATE", "AUTHOR", "NOTE")
		for _, n := range l.Notes {
			row(w, formatDate(n.CreatedAt), orDash(n.Author), n.Body)
		}
		return w.Flush()
	}
	return nil
}

func runLeadsStatus(s *session, cmd *cobra.Command, args []string) error {
	l, err := s.svc.CRM.UpdateLeadStatus(s.ctx, args[0], domain.LeadStatus(args[1]))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Lead %s moved to %s\n", l.ID, l.Status)
	return nil
}

func runLeadsAssign(s *session, cmd *cobra.Command, args []string) error {
	l, err := s.svc.CRM.AssignLead(s.ctx, args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Lead %s assigned to %s\n", l.ID, orDash(l.AssignedTo))
	return nil
}

func runLeadsNote(s *session, cmd *cobra.Command, args []string) error {
	note, err := s.svc.CRM.AddNote(s.ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added note %s\n", note.ID)
	return nil
}

func runLeadsStats(s *session, cmd *cobra.Command, args []string) error {
	from, err := parseDate(leadFrom)
	if err != nil {
		return err
	}
	to, err := parseDate(leadTo)
	if err != nil {
		return err
	}

	stats, err := s.svc.CRM.Stats(s.ctx, from, to)
	if err != nil {
		return err
	}
	printLeadStats(cmd, stats)
	return nil
}

func printLeadStats(cmd *cobra.Command, stats *domain.LeadStats) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Leads: %d   Conversion: %.1f%%   Avg score: %.1f\n\n",
		stats.Total, stats.ConversionRate, stats.AverageScore)

	stages := []domain.LeadStatus{
		domain.LeadStatusNew, domain.LeadStatusContacted, domain.LeadStatusQualified,
		domain.LeadStatusProposal, domain.LeadStatusWon, domain.LeadStatusLost,
	}
	w := newTable(out, "STAGE", "COUNT")
	for _, st := range stages {
		row(w, st, stats.ByStatus[st])
	}
	_ = w.Flush()

	if len(stats.BySource) == 0 {
		return
	}
	sources := make([]string, 0, len(stats.BySource))
	for src := range stats.BySource {
		sources = append(sources, src)
	}
	sort.Strings(sources)

	fmt.Fprintln(out)
	w = newTable(out, "SOURCE", "COUNT")
	for _, src := range sources {
		row(w, src, stats.BySource[src])
	}
	_ = w.Flush()
}

func runLeadsWatch(s *session, cmd *cobra.Command, args []string) error {
	filter, err := buildLeadFilter()
	if err != nil {
		return err
	}

	scope := control.NewScope(s.ctx)
	defer scope.Close()

	out := cmd.OutOrStdout()
	poller := control.NewLeadPoller(s.svc.CRM, filter, watchInterval, slog.Default())
	fmt.Fprintln(cmd.ErrOrStderr(), "Watching for new leads, press Ctrl+C to stop")

	return poller.Run(scope, func(leads []domain.Lead) {
		w := newTable(out, "ID", "NAME", "SOURCE", "STATUS", "SCORE", "ASSIGNED", "CREATED")
		for _, l := range leads {
			writeLeadRow(w, l)
		}
		_ = w.Flush()
		fmt.Fprintln(out)
	})
}
