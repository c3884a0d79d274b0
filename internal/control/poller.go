package control

import (
	"context"
	"log/slog"
	"time"

	"github.com/vietddude/touradmin/internal/core/domain"
	"github.com/vietddude/touradmin/internal/infra/api"
	"github.com/vietddude/touradmin/internal/service"
)

const minPollInterval = 5 * time.Second

// LeadLister is the part of the CRM service the poller needs.
type LeadLister interface {
	ListLeads(ctx context.Context, f service.LeadFilter) (*domain.LeadList, error)
}

// LeadPoller re-fetches the lead list on an interval and reports leads it has not seen.
type LeadPoller struct {
	crm      LeadLister
	filter   service.LeadFilter
	interval time.Duration
	seen     map[string]struct{}
	log      *slog.Logger
}

// NewLeadPoller creates a poller. Intervals below five seconds are raised to five seconds.
func NewLeadPoller(crm LeadLister, filter service.LeadFilter, interval time.Duration, log *slog.Logger) *LeadPoller {
	if log == nil {
		log = slog.Default()
	}
	return &LeadPoller{
		crm:      crm,
		filter:   filter,
		interval: max(interval, minPollInterval),
		seen:     make(map[string]struct{}),
		log:      log.With("component", "lead_poller"),
	}
}

// Run polls until the scope closes. onNew receives the leads not reported before;
// the first poll reports the whole current page. Transient errors are logged and
// retried on the next tick. A rejected session stops the poller.
func (p *LeadPoller) Run(scope *Scope, onNew func([]domain.Lead)) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	// Initial poll
	if err := p.poll(scope, onNew); err != nil {
		return err
	}

	for {
		select {
		case <-scope.Context().Done():
			return nil
		case <-ticker.C:
			if err := p.poll(scope, onNew); err != nil {
				return err
			}
		}
	}
}

func (p *LeadPoller) poll(scope *Scope, onNew func([]domain.Lead)) error {
	list, ok, err := Fetch(scope, func(ctx context.Context) (*domain.LeadList, error) {
		return p.crm.ListLeads(ctx, p.filter)
	})
	if !ok {
		return nil
	}
	if err != nil {
		if api.IsUnauthorized(err) {
			return err
		}
		if scope.Context().Err() != nil {
			return nil
		}
		p.log.Warn("Failed to poll leads", "error", err)
		return nil
	}

	var fresh []domain.Lead
	for _, lead := range list.Leads {
		if _, dup := p.seen[lead.ID]; dup {
			continue
		}
		p.seen[lead.ID] = struct{}{}
		fresh = append(fresh, lead)
	}
	if len(fresh) > 0 {
		scope.apply(func() { onNew(fresh) })
	}
	return nil
}
