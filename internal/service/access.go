package service

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vietddude/touradmin/internal/core/domain"
	"github.com/vietddude/touradmin/internal/infra/api"
)

// AdminsService manages dashboard operator accounts.
type AdminsService struct {
	res resource[domain.Admin, domain.AdminList]
}

func NewAdminsService(c Doer) *AdminsService {
	return &AdminsService{res: resource[domain.Admin, domain.AdminList]{client: c, path: "/admin/admins"}}
}

func (s *AdminsService) List(ctx context.Context, p ListParams) (*domain.AdminList, error) {
	return s.res.list(ctx, p.values())
}

func (s *AdminsService) Get(ctx context.Context, id string) (*domain.Admin, error) {
	return s.res.get(ctx, id)
}

// Create requires a password; Update leaves it unchanged when empty.
func (s *AdminsService) Create(ctx context.Context, in domain.AdminInput) (*domain.Admin, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, required("Password")
	}
	return s.res.create(ctx, in)
}

func (s *AdminsService) Update(ctx context.Context, id string, in domain.AdminInput) (*domain.Admin, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.res.update(ctx, id, in)
}

func (s *AdminsService) Delete(ctx context.Context, id string) error {
	return s.res.remove(ctx, id)
}

// RolesService manages roles and the permissions attached to them.
type RolesService struct {
	client Doer
	res    resource[domain.Role, domain.RoleList]
}

func NewRolesService(c Doer) *RolesService {
	return &RolesService{client: c, res: resource[domain.Role, domain.RoleList]{client: c, path: "/admin/roles"}}
}

func (s *RolesService) List(ctx context.Context, p ListParams) (*domain.RoleList, error) {
	return s.res.list(ctx, p.values())
}

func (s *RolesService) Get(ctx context.Context, id string) (*domain.Role, error) {
	return s.res.get(ctx, id)
}

func (s *RolesService) Create(ctx context.Context, in domain.RoleInput) (*domain.Role, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.res.create(ctx, in)
}

func (s *RolesService) Update(ctx context.Context, id string, in domain.RoleInput) (*domain.Role, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.res.update(ctx, id, in)
}

func (s *RolesService) Delete(ctx context.Context, id string) error {
	return s.res.remove(ctx, id)
}

// AssignPermissions replaces the role's permission set with permissionIDs.
func (s *RolesService) AssignPermissions(ctx context.Context, id string, permissionIDs []string) (*domain.Role, error) {
	if id == "" {
		return nil, errMissingID
	}
	if permissionIDs == nil {
		permissionIDs = []string{}
	}
	return call[domain.Role](ctx, s.client, &api.Request{
		Method: http.MethodPut,
		Path:   s.res.item(id, "permissions"),
		Body:   map[string][]string{"permissionIds": permissionIDs},
	})
}

type ModulesService struct {
	res resource[domain.Module, domain.ModuleList]
}

func NewModulesService(c Doer) *ModulesService {
	return &ModulesService{res: resource[domain.Module, domain.ModuleList]{client: c, path: "/admin/modules"}}
}

func (s *ModulesService) List(ctx context.Context, p ListParams) (*domain.ModuleList, error) {
	return s.res.list(ctx, p.values())
}

func (s *ModulesService) Create(ctx context.Context, in domain.ModuleInput) (*domain.Module, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.res.create(ctx, in)
}

func (s *ModulesService) Update(ctx context.Context, id string, in domain.ModuleInput) (*domain.Module, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.res.update(ctx, id, in)
}

func (s *ModulesService) Delete(ctx context.Context, id string) error {
	return s.res.remove(ctx, id)
}

type PermissionFilter struct {
	ListParams
	ModuleID string
}

func (f PermissionFilter) values() url.Values {
	q := f.ListParams.values()
	if f.ModuleID != "" {
		q.Set("moduleId", f.ModuleID)
	}
	return q
}

type PermissionsService struct {
	res resource[domain.Permission, domain.PermissionList]
}

func NewPermissionsService(c Doer) *PermissionsService {
	return &PermissionsService{res: resource[domain.Permission, domain.PermissionList]{client: c, path: "/admin/permissions"}}
}

func (s *PermissionsService) List(ctx context.Context, f PermissionFilter) (*domain.PermissionList, error) {
	return s.res.list(ctx, f.values())
}

func (s *PermissionsService) Create(ctx context.Context, in domain.PermissionInput) (*domain.Permission, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	return s.res.create(ctx, in)
}

func (s *PermissionsService) Delete(ctx context.Context, id string) error {
	return s.res.remove(ctx, id)
}
