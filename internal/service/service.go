// Package service holds one thin service per backend domain. Each builds a query
// string or multipart form, calls the API client and unwraps the response envelope.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vietddude/touradmin/internal/core/domain"
	"github.com/vietddude/touradmin/internal/infra/api"
	"github.com/vietddude/touradmin/internal/infra/storage"
)

// Doer sends a request through the token-aware client.
type Doer interface {
	Do(ctx context.Context, req *api.Request) (*api.Response, error)
}

// Services bundles every domain service over one client.
type Services struct {
	Auth        *AuthService
	Tours       *ToursService
	CRM         *CRMService
	Users       *UsersService
	Admins      *AdminsService
	Roles       *RolesService
	Modules     *ModulesService
	Permissions *PermissionsService
	TravelGuide *TravelGuideService
	HeroSlides  *HeroSlidesService
	Blogs       *BlogsService
}

// New wires all services to c. tokens is written on login and cleared on logout.
func New(c Doer, tokens storage.TokenStore) *Services {
	return &Services{
		Auth:        NewAuthService(c, tokens),
		Tours:       NewToursService(c),
		CRM:         NewCRMService(c),
		Users:       NewUsersService(c),
		Admins:      NewAdminsService(c),
		Roles:       NewRolesService(c),
		Modules:     NewModulesService(c),
		Permissions: NewPermissionsService(c),
		TravelGuide: NewTravelGuideService(c),
		HeroSlides:  NewHeroSlidesService(c),
		Blogs:       NewBlogsService(c),
	}
}

// ListParams are the paging and search parameters shared by every list screen.
type ListParams struct {
	Page   int
	Limit  int
	Search string
	Sort   string
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if s := strings.TrimSpace(p.Search); s != "" {
		q.Set("search", s)
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}
	return q
}

// call sends req and decodes the envelope payload into a new T.
// An envelope with status=false becomes an *api.Error carrying the backend message.
func call[T any](ctx context.Context, c Doer, req *api.Request) (*T, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	var env domain.Envelope
	if err := resp.Decode(&env); err != nil {
		return nil, err
	}
	if !env.Status {
		return nil, api.EnvelopeError(resp.StatusCode, resp.Body)
	}

	out := new(T)
	if len(env.Payload) == 0 || string(env.Payload) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(env.Payload, out); err != nil {
		return nil, &api.Error{
			StatusCode: resp.StatusCode,
			Message:    "Unexpected response from server",
			Err:        fmt.Errorf("parse payload: %w", err),
		}
	}
	return out, nil
}

// exec is call for endpoints whose payload the caller does not need.
func exec(ctx context.Context, c Doer, req *api.Request) error {
	_, err := call[json.RawMessage](ctx, c, req)
	return err
}

// resource implements the CRUD endpoints shared by most domains.
// T is the item type and L the list payload.
type resource[T, L any] struct {
	client Doer
	path   string
}

func (r resource[T, L]) item(id string, sub ...string) string {
	p := r.path + "/" + url.PathEscape(id)
	for _, s := range sub {
		p += "/" + s
	}
	return p
}

func (r resource[T, L]) list(ctx context.Context, q url.Values) (*L, error) {
	return call[L](ctx, r.client, &api.Request{Method: http.MethodGet, Path: r.path, Query: q})
}

func (r resource[T, L]) get(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, errMissingID
	}
	return call[T](ctx, r.client, &api.Request{Method: http.MethodGet, Path: r.item(id)})
}

func (r resource[T, L]) create(ctx context.Context, body any) (*T, error) {
	return call[T](ctx, r.client, &api.Request{Method: http.MethodPost, Path: r.path, Body: body})
}

func (r resource[T, L]) update(ctx context.Context, id string, body any) (*T, error) {
	if id == "" {
		return nil, errMissingID
	}
	return call[T](ctx, r.client, &api.Request{Method: http.MethodPut, Path: r.item(id), Body: body})
}

func (r resource[T, L]) patch(ctx context.Context, id, sub string, body any) (*T, error) {
	if id == "" {
		return nil, errMissingID
	}
	return call[T](ctx, r.client, &api.Request{Method: http.MethodPatch, Path: r.item(id, sub), Body: body})
}

func (r resource[T, L]) remove(ctx context.Context, id string) error {
	if id == "" {
		return errMissingID
	}
	return exec(ctx, r.client, &api.Request{Method: http.MethodDelete, Path: r.item(id)})
}
