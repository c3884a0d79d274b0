package service

import (
	"context"
	"net/url"

	"github.com/vietddude/touradmin/internal/core/domain"
)

type UserFilter struct {
	ListParams
	Status domain.UserStatus
}

func (f UserFilter) values() url.Values {
	q := f.ListParams.values()
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	return q
}

// UsersService manages customer accounts.
type UsersService struct {
	res resource[domain.User, domain.UserList]
}

func NewUsersService(c Doer) *UsersService {
	return &UsersService{res: resource[domain.User, domain.UserList]{client: c, path: "/admin/users"}}
}

func (s *UsersService) List(ctx context.Context, f UserFilter) (*domain.UserList, error) {
	return s.res.list(ctx, f.values())
}

func (s *UsersService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.res.get(ctx, id)
}

// UpdateStatus blocks or re-activates a user.
func (s *UsersService) UpdateStatus(ctx context.Context, id string, status domain.UserStatus) (*domain.User, error) {
	if status != domain.UserStatusActive && status != domain.UserStatusBlocked {
		return nil, &ValidationError{Problems: []string{"Status must be one of: active, blocked"}}
	}
	return s.res.patch(ctx, id, "status", map[string]string{"status": string(status)})
}

func (s *UsersService) Delete(ctx context.Context, id string) error {
	return s.res.remove(ctx, id)
}
