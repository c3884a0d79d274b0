package control

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vietddude/touradmin/internal/core/domain"
	"github.com/vietddude/touradmin/internal/service"
)

const recentLeadsLimit = 5

// Dashboard is the overview screen: counts per domain plus the latest leads.
type Dashboard struct {
	Tours       int
	Published   int
	Users       int
	Blogs       int
	LeadStats   domain.LeadStats
	RecentLeads []domain.Lead
}

// LoadDashboard fetches every panel concurrently. The first failure cancels the rest.
func LoadDashboard(ctx context.Context, svc *service.Services) (*Dashboard, error) {
	var d Dashboard
	g, ctx := errgroup.WithContext(ctx)

	// Each goroutine writes a distinct field.
	g.Go(func() error {
		list, err := svc.Tours.List(ctx, service.TourFilter{ListParams: service.ListParams{Limit: 1}})
		if err != nil {
			return fmt.Errorf("tours: %w", err)
		}
		d.Tours = list.Pagination.Total
		return nil
	})
	g.Go(func() error {
		list, err := svc.Tours.List(ctx, service.TourFilter{
			ListParams: service.ListParams{Limit: 1},
			Status:     domain.TourStatusPublished,
		})
		if err != nil {
			return fmt.Errorf("published tours: %w", err)
		}
		d.Published = list.Pagination.Total
		return nil
	})
	g.Go(func() error {
		list, err := svc.Users.List(ctx, service.UserFilter{ListParams: service.ListParams{Limit: 1}})
		if err != nil {
			return fmt.Errorf("users: %w", err)
		}
		d.Users = list.Pagination.Total
		return nil
	})
	g.Go(func() error {
		list, err := svc.Blogs.List(ctx, service.BlogFilter{ListParams: service.ListParams{Limit: 1}})
		if err != nil {
			return fmt.Errorf("blogs: %w", err)
		}
		d.Blogs = list.Pagination.Total
		return nil
	})
	g.Go(func() error {
		stats, err := svc.CRM.Stats(ctx, time.Time{}, time.Time{})
		if err != nil {
			return fmt.Errorf("lead stats: %w", err)
		}
		d.LeadStats = *stats
		return nil
	})
	g.Go(func() error {
		list, err := svc.CRM.ListLeads(ctx, service.LeadFilter{
			ListParams: service.ListParams{Limit: recentLeadsLimit, Sort: "-createdAt"},
		})
		if err != nil {
			return fmt.Errorf("recent leads: %w", err)
		}
		d.RecentLeads = list.Leads
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}
