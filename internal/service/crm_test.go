package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/vietddude/touradmin/internal/core/domain"
)

func TestLeadFilter_Values(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter LeadFilter
		want   string
	}{
		{name: "empty", filter: LeadFilter{}, want: ""},
		{
			name:   "status and source",
			filter: LeadFilter{Status: domain.LeadStatusWon, Source: "facebook"},
			want:   "source=facebook&status=won",
		},
		{
			name:   "date range",
			filter: LeadFilter{From: from, To: to},
			want:   "from=2026-03-01&to=2026-03-31",
		},
		{
			name:   "assignee with paging",
			filter: LeadFilter{ListParams: ListParams{Page: 3}, AssignedTo: "adm1"},
			want:   "assignedTo=adm1&page=3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.values().Encode(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCRMService_UpdateLeadStatus(t *testing.T) {
	doer := newFakeDoer(ok(`{"status":true,"payload":{"id":"l1","status":"contacted"}}`))
	svc := NewCRMService(doer)

	lead, err := svc.UpdateLeadStatus(context.Background(), "l1", domain.LeadStatusContacted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lead.Status != domain.LeadStatusContacted {
		t.Errorf("unexpected status %s", lead.Status)
	}
	req := doer.last(t)
	if req.Method != http.MethodPatch || req.Path != "/admin/crm/leads/l1/status" {
		t.Errorf("unexpected request %s %s", req.Method, req.Path)
	}

	_, err = svc.UpdateLeadStatus(context.Background(), "l1", "archived")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if doer.count() != 1 {
		t.Errorf("expected invalid status not to be sent, got %d requests", doer.count())
	}
}

func TestCRMService_AssignAndNote(t *testing.T) {
	doer := newFakeDoer(
		ok(`{"status":true,"payload":{"id":"l1","assignedTo":"adm2"}}`),
		ok(`{"status":true,"payload":{"id":"n1","body":"Called, wants October dates"}}`),
	)
	svc := NewCRMService(doer)
	ctx := context.Background()

	lead, err := svc.AssignLead(ctx, "l1", "adm2")
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if lead.AssignedTo != "adm2" {
		t.Errorf("unexpected assignee %s", lead.AssignedTo)
	}
	if req := doer.last(t); req.Path != "/admin/crm/leads/l1/assign" {
		t.Errorf("unexpected path %s", req.Path)
	}

	note, err := svc.AddNote(ctx, "l1", "  Called, wants October dates ")
	if err != nil {
		t.Fatalf("add note: %v", err)
	}
	if note.ID != "n1" {
		t.Errorf("unexpected note %+v", note)
	}
	req := doer.last(t)
	if req.Method != http.MethodPost || req.Path != "/admin/crm/leads/l1/notes" {
		t.Errorf("unexpected request %s %s", req.Method, req.Path)
	}
	if body := req.Body.(map[string]string); body["body"] != "Called, wants October dates" {
		t.Errorf("expected trimmed note body, got %q", body["body"])
	}

	if _, err := svc.AddNote(ctx, "l1", "   "); err == nil {
		t.Error("expected error for blank note")
	}
	if doer.count() != 2 {
		t.Errorf("expected blank note not to be sent, got %d requests", doer.count())
	}
}

func TestCRMService_CreateLeadValidates(t *testing.T) {
	doer := newFakeDoer()
	svc := NewCRMService(doer)

	_, err := svc.CreateLead(context.Background(), domain.LeadInput{Name: "Hoa", Email: "not-an-email"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if vErr.Error() != "Email must be a valid email" {
		t.Errorf("unexpected message %q", vErr.Error())
	}
	if doer.count() != 0 {
		t.Errorf("expected no request, got %d", doer.count())
	}
}

func TestCRMService_Stats(t *testing.T) {
	doer := newFakeDoer(ok(`{"status":true,"payload":{"total":42,"byStatus":{"new":10,"won":4},` +
		`"conversionRate":9.5,"averageScore":61.2}}`))
	svc := NewCRMService(doer)

	stats, err := svc.Stats(context.Background(), time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 42 || stats.ByStatus[domain.LeadStatusWon] != 4 {
		t.Errorf("unexpected stats %+v", stats)
	}

	req := doer.last(t)
	if req.Path != "/admin/crm/stats" {
		t.Errorf("unexpected path %s", req.Path)
	}
	if got := req.Query.Encode(); got != "from=2026-01-01" {
		t.Errorf("unexpected query %q", got)
	}
}
