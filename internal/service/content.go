package service

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vietddude/touradmin/internal/core/domain"
	"github.com/vietddude/touradmin/internal/infra/api"
)

// HeroSlidesService manages the landing page carousel.
type HeroSlidesService struct {
	client Doer
	res    resource[domain.HeroSlide, domain.HeroSlideList]
}

func NewHeroSlidesService(c Doer) *HeroSlidesService {
	return &HeroSlidesService{client: c, res: resource[domain.HeroSlide, domain.HeroSlideList]{client: c, path: "/admin/hero-slides"}}
}

func (s *HeroSlidesService) List(ctx context.Context, p ListParams) (*domain.HeroSlideList, error) {
	return s.res.list(ctx, p.values())
}

// Create uploads a new slide. The image is mandatory for new slides.
func (s *HeroSlidesService) Create(ctx context.Context, in domain.HeroSlideInput) (*domain.HeroSlide, error) {
	if in.Image == nil {
		if err := validateInput(in); err != nil {
			return nil, err
		}
		return nil, required("Image")
	}
	form, err := slideForm(in)
	if err != nil {
		return nil, err
	}
	return s.res.create(ctx, form)
}

// Update edits a slide. A nil image keeps the current one.
func (s *HeroSlidesService) Update(ctx context.Context, id string, in domain.HeroSlideInput) (*domain.HeroSlide, error) {
	form, err := slideForm(in)
	if err != nil {
		return nil, err
	}
	return s.res.update(ctx, id, form)
}

// Reorder sets the display order to the order of ids.
func (s *HeroSlidesService) Reorder(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return required("Slide order")
	}
	return exec(ctx, s.client, &api.Request{
		Method: http.MethodPut,
		Path:   s.res.path + "/reorder",
		Body:   map[string][]string{"order": ids},
	})
}

func (s *HeroSlidesService) Delete(ctx context.Context, id string) error {
	return s.res.remove(ctx, id)
}

func slideForm(in domain.HeroSlideInput) (*api.Form, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	form := api.NewForm().
		Add("title", in.Title).
		Add("order", strconv.Itoa(in.Order)).
		Add("isActive", strconv.FormatBool(in.IsActive))
	if in.Subtitle != "" {
		form.Add("subtitle", in.Subtitle)
	}
	if in.LinkURL != "" {
		form.Add("linkUrl", in.LinkURL)
	}
	if in.Image != nil {
		form.AddFile("image", in.Image.Filename, in.Image.Data)
	}
	return form, nil
}

type BlogFilter struct {
	ListParams
	Status domain.BlogStatus
	Tag    string
}

func (f BlogFilter) values() url.Values {
	q := f.ListParams.values()
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Tag != "" {
		q.Set("tag", f.Tag)
	}
	return q
}

type BlogsService struct {
	res resource[domain.Blog, domain.BlogList]
}

func NewBlogsService(c Doer) *BlogsService {
	return &BlogsService{res: resource[domain.Blog, domain.BlogList]{client: c, path: "/admin/blogs"}}
}

func (s *BlogsService) List(ctx context.Context, f BlogFilter) (*domain.BlogList, error) {
	return s.res.list(ctx, f.values())
}

func (s *BlogsService) Get(ctx context.Context, id string) (*domain.Blog, error) {
	return s.res.get(ctx, id)
}

func (s *BlogsService) Create(ctx context.Context, in domain.BlogInput) (*domain.Blog, error) {
	form, err := blogForm(in)
	if err != nil {
		return nil, err
	}
	return s.res.create(ctx, form)
}

func (s *BlogsService) Update(ctx context.Context, id string, in domain.BlogInput) (*domain.Blog, error) {
	form, err := blogForm(in)
	if err != nil {
		return nil, err
	}
	return s.res.update(ctx, id, form)
}

func (s *BlogsService) Delete(ctx context.Context, id string) error {
	return s.res.remove(ctx, id)
}

func blogForm(in domain.BlogInput) (*api.Form, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	form := api.NewForm().
		Add("title", in.Title).
		Add("content", in.Content)
	if in.Excerpt != "" {
		form.Add("excerpt", in.Excerpt)
	}
	if in.Status != "" {
		form.Add("status", string(in.Status))
	}
	if len(in.Tags) > 0 {
		if err := form.AddJSON("tags", in.Tags); err != nil {
			return nil, err
		}
	}
	if in.Cover != nil {
		form.AddFile("coverImage", in.Cover.Filename, in.Cover.Data)
	}
	return form, nil
}
