package service

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vietddude/touradmin/internal/core/domain"
	"github.com/vietddude/touradmin/internal/infra/api"
)

const dateLayout = "2006-01-02"

// LeadFilter narrows the lead pipeline view.
type LeadFilter struct {
	ListParams
	Status     domain.LeadStatus
	Source     string
	AssignedTo string
	From       time.Time
	To         time.Time
}

func (f LeadFilter) values() url.Values {
	q := f.ListParams.values()
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Source != "" {
		q.Set("source", f.Source)
	}
	if f.AssignedTo != "" {
		q.Set("assignedTo", f.AssignedTo)
	}
	addRange(q, f.From, f.To)
	return q
}

func addRange(q url.Values, from, to time.Time) {
	if !from.IsZero() {
		q.Set("from", from.Format(dateLayout))
	}
	if !to.IsZero() {
		q.Set("to", to.Format(dateLayout))
	}
}

// CRMService manages leads. Scoring and pipeline analytics are computed by the backend.
type CRMService struct {
	client Doer
	leads  resource[domain.Lead, domain.LeadList]
}

func NewCRMService(c Doer) *CRMService {
	return &CRMService{
		client: c,
		leads:  resource[domain.Lead, domain.LeadList]{client: c, path: "/admin/crm/leads"},
	}
}

func (s *CRMService) ListLeads(ctx context.Context, f LeadFilter) (*domain.LeadList, error) {
	return s.leads.list(ctx, f.values())
}

func (s *CRMService) GetLead(ctx context.Context, id string) (*domain.Lead, error) {
	return s.leads.get(ctx, id)
}

func (s *CRMService) CreateLead(ctx context.Context, in domain.LeadInput) (*domain.Lead, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.leads.create(ctx, in)
}

func (s *CRMService) UpdateLead(ctx context.Context, id string, in domain.LeadInput) (*domain.Lead, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.leads.update(ctx, id, in)
}

// UpdateLeadStatus moves a lead to another pipeline stage.
func (s *CRMService) UpdateLeadStatus(ctx context.Context, id string, status domain.LeadStatus) (*domain.Lead, error) {
	if !status.Valid() {
		return nil, &ValidationError{Problems: []string{
			"Status must be one of: new, contacted, qualified, proposal, won, lost",
		}}
	}
	return s.leads.patch(ctx, id, "status", map[string]string{"status": string(status)})
}

// AssignLead hands a lead to an admin. An empty adminID unassigns it.
func (s *CRMService) AssignLead(ctx context.Context, id, adminID string) (*domain.Lead, error) {
	return s.leads.patch(ctx, id, "assign", map[string]string{"assignedTo": adminID})
}

func (s *CRMService) AddNote(ctx context.Context, id, body string) (*domain.LeadNote, error) {
	if id == "" {
		return nil, errMissingID
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, required("Note")
	}
	return call[domain.LeadNote](ctx, s.client, &api.Request{
		Method: http.MethodPost,
		Path:   s.leads.item(id, "notes"),
		Body:   map[string]string{"body": body},
	})
}

func (s *CRMService) DeleteLead(ctx context.Context, id string) error {
	return s.leads.remove(ctx, id)
}

// Stats returns the pipeline summary for an optional date range.
func (s *CRMService) Stats(ctx context.Context, from, to time.Time) (*domain.LeadStats, error) {
	q := url.Values{}
	addRange(q, from, to)
	return call[domain.LeadStats](ctx, s.client, &api.Request{
		Method: http.MethodGet,
		Path:   "/admin/crm/stats",
		Query:  q,
	})
}
