package service

import (
	"context"

	"github.com/vietddude/touradmin/internal/core/domain"
	"github.com/vietddude/touradmin/internal/infra/api"
)

const travelGuidePath = "/admin/travel-guide"

type CityFilter struct {
	ListParams
	StateID string
}

type DataFilter struct {
	ListParams
	CityID   string
	Category string
}

// TravelGuideService manages the state > city > entry hierarchy.
type TravelGuideService struct {
	states resource[domain.TravelGuideState, domain.TravelGuideStateList]
	cities resource[domain.TravelGuideCity, domain.TravelGuideCityList]
	data   resource[domain.TravelGuideData, domain.TravelGuideDataList]
}

func NewTravelGuideService(c Doer) *TravelGuideService {
	return &TravelGuideService{
		states: resource[domain.TravelGuideState, domain.TravelGuideStateList]{client: c, path: travelGuidePath + "/states"},
		cities: resource[domain.TravelGuideCity, domain.TravelGuideCityList]{client: c, path: travelGuidePath + "/cities"},
		data:   resource[domain.TravelGuideData, domain.TravelGuideDataList]{client: c, path: travelGuidePath + "/data"},
	}
}

func (s *TravelGuideService) ListStates(ctx context.Context, p ListParams) (*domain.TravelGuideStateList, error) {
	return s.states.list(ctx, p.values())
}

func (s *TravelGuideService) CreateState(ctx context.Context, in domain.TravelGuidePlaceInput) (*domain.TravelGuideState, error) {
	form, err := placeForm(in, false)
	if err != nil {
		return nil, err
	}
	return s.states.create(ctx, form)
}

func (s *TravelGuideService) UpdateState(ctx context.Context, id string, in domain.TravelGuidePlaceInput) (*domain.TravelGuideState, error) {
	form, err := placeForm(in, false)
	if err != nil {
		return nil, err
	}
	return s.states.update(ctx, id, form)
}

func (s *TravelGuideService) DeleteState(ctx context.Context, id string) error {
	return s.states.remove(ctx, id)
}

func (s *TravelGuideService) ListCities(ctx context.Context, f CityFilter) (*domain.TravelGuideCityList, error) {
	q := f.ListParams.values()
	if f.StateID != "" {
		q.Set("stateId", f.StateID)
	}
	return s.cities.list(ctx, q)
}

func (s *TravelGuideService) CreateCity(ctx context.Context, in domain.TravelGuidePlaceInput) (*domain.TravelGuideCity, error) {
	form, err := placeForm(in, true)
	if err != nil {
		return nil, err
	}
	return s.cities.create(ctx, form)
}

func (s *TravelGuideService) UpdateCity(ctx context.Context, id string, in domain.TravelGuidePlaceInput) (*domain.TravelGuideCity, error) {
	form, err := placeForm(in, true)
	if err != nil {
		return nil, err
	}
	return s.cities.update(ctx, id, form)
}

func (s *TravelGuideService) DeleteCity(ctx context.Context, id string) error {
	return s.cities.remove(ctx, id)
}

func (s *TravelGuideService) ListData(ctx context.Context, f DataFilter) (*domain.TravelGuideDataList, error) {
	q := f.ListParams.values()
	if f.CityID != "" {
		q.Set("cityId", f.CityID)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	return s.data.list(ctx, q)
}

func (s *TravelGuideService) CreateData(ctx context.Context, in domain.TravelGuideDataInput) (*domain.TravelGuideData, error) {
	form, err := dataForm(in)
	if err != nil {
		return nil, err
	}
	return s.data.create(ctx, form)
}

func (s *TravelGuideService) UpdateData(ctx context.Context, id string, in domain.TravelGuideDataInput) (*domain.TravelGuideData, error) {
	form, err := dataForm(in)
	if err != nil {
		return nil, err
	}
	return s.data.update(ctx, id, form)
}

func (s *TravelGuideService) DeleteData(ctx context.Context, id string) error {
	return s.data.remove(ctx, id)
}

func placeForm(in domain.TravelGuidePlaceInput, city bool) (*api.Form, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if city && in.StateID == "" {
		return nil, required("State")
	}

	form := api.NewForm().Add("name", in.Name)
	if city {
		form.Add("stateId", in.StateID)
	}
	if in.Description != "" {
		form.Add("description", in.Description)
	}
	if in.Image != nil {
		form.AddFile("image", in.Image.Filename, in.Image.Data)
	}
	return form, nil
}

func dataForm(in domain.TravelGuideDataInput) (*api.Form, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	form := api.NewForm().
		Add("cityId", in.CityID).
		Add("title", in.Title).
		Add("category", in.Category)
	if in.Content != "" {
		form.Add("content", in.Content)
	}
	for _, img := range in.Images {
		form.AddFile("images", img.Filename, img.Data)
	}
	return form, nil
}
