package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/vietddude/touradmin/internal/core/domain"
	"github.com/vietddude/touradmin/internal/infra/api"
)

// TourFilter narrows the tour list.
type TourFilter struct {
	ListParams
	Status   domain.TourStatus
	Category string
	Featured *bool
}

func (f TourFilter) values() url.Values {
	q := f.ListParams.values()
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Featured != nil {
		q.Set("featured", strconv.FormatBool(*f.Featured))
	}
	return q
}

type ToursService struct {
	res resource[domain.Tour, domain.TourList]
}

func NewToursService(c Doer) *ToursService {
	return &ToursService{res: resource[domain.Tour, domain.TourList]{client: c, path: "/admin/tours"}}
}

func (s *ToursService) List(ctx context.Context, f TourFilter) (*domain.TourList, error) {
	return s.res.list(ctx, f.values())
}

func (s *ToursService) Get(ctx context.Context, id string) (*domain.Tour, error) {
	return s.res.get(ctx, id)
}

// Create uploads the tour with its images as one multipart request.
func (s *ToursService) Create(ctx context.Context, in domain.TourInput) (*domain.Tour, error) {
	form, err := tourForm(in)
	if err != nil {
		return nil, err
	}
	return s.res.create(ctx, form)
}

// Update replaces the tour. Images in the input are appended to the existing gallery.
func (s *ToursService) Update(ctx context.Context, id string, in domain.TourInput) (*domain.Tour, error) {
	form, err := tourForm(in)
	if err != nil {
		return nil, err
	}
	return s.res.update(ctx, id, form)
}

func (s *ToursService) SetStatus(ctx context.Context, id string, status domain.TourStatus) (*domain.Tour, error) {
	switch status {
	case domain.TourStatusDraft, domain.TourStatusPublished, domain.TourStatusArchived:
	default:
		return nil, &ValidationError{Problems: []string{"Status must be one of: draft, published, archived"}}
	}
	return s.res.patch(ctx, id, "status", map[string]string{"status": string(status)})
}

func (s *ToursService) Delete(ctx context.Context, id string) error {
	return s.res.remove(ctx, id)
}

func tourForm(in domain.TourInput) (*api.Form, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	form := api.NewForm().
		Add("title", in.Title).
		Add("destination", in.Destination).
		Add("description", in.Description).
		Add("durationDays", strconv.Itoa(in.DurationDays)).
		Add("price", strconv.FormatFloat(in.Price, 'f', -1, 64)).
		Add("featured", strconv.FormatBool(in.Featured))

	if in.Category != "" {
		form.Add("category", in.Category)
	}
	if in.DiscountPrice > 0 {
		form.Add("discountPrice", strconv.FormatFloat(in.DiscountPrice, 'f', -1, 64))
	}
	if in.Currency != "" {
		form.Add("currency", in.Currency)
	}
	if in.Status != "" {
		form.Add("status", string(in.Status))
	}
	if len(in.Itinerary) > 0 {
		if err := form.AddJSON("itinerary", in.Itinerary); err != nil {
			return nil, err
		}
	}
	for _, img := range in.Images {
		form.AddFile("images", img.Filename, img.Data)
	}

	return form, nil
}
