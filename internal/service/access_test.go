package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/vietddude/touradmin/internal/core/domain"
)

func TestAdminsService_CreateRequiresPassword(t *testing.T) {
	doer := newFakeDoer()
	svc := NewAdminsService(doer)
	in := domain.AdminInput{Name: "Lan", Email: "lan@example.com", RoleID: "r1"}

	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatal("expected error without password")
	}
	if doer.count() != 0 {
		t.Errorf("expected no request, got %d", doer.count())
	}

	// Updates may omit the password.
	if _, err := svc.Update(context.Background(), "adm1", in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req := doer.last(t); req.Method != http.MethodPut || req.Path != "/admin/admins/adm1" {
		t.Errorf("unexpected request %s %s", req.Method, req.Path)
	}
}

func TestRolesService_AssignPermissions(t *testing.T) {
	doer := newFakeDoer(ok(`{"status":true,"payload":{"id":"r1","permissions":[{"id":"p1"},{"id":"p2"}]}}`))
	svc := NewRolesService(doer)

	role, err := svc.AssignPermissions(context.Background(), "r1", []string{"p1", "p2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(role.Permissions) != 2 {
		t.Errorf("unexpected permissions %+v", role.Permissions)
	}

	req := doer.last(t)
	if req.Method != http.MethodPut || req.Path != "/admin/roles/r1/permissions" {
		t.Errorf("unexpected request %s %s", req.Method, req.Path)
	}
	if ids := req.Body.(map[string][]string)["permissionIds"]; len(ids) != 2 {
		t.Errorf("unexpected body %v", req.Body)
	}
}

func TestRolesService_AssignNoPermissionsSendsEmptyList(t *testing.T) {
	doer := newFakeDoer()
	svc := NewRolesService(doer)

	if _, err := svc.AssignPermissions(context.Background(), "r1", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ids := doer.last(t).Body.(map[string][]string)["permissionIds"]
	if ids == nil || len(ids) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", ids)
	}
}

func TestPermissionsService(t *testing.T) {
	doer := newFakeDoer()
	svc := NewPermissionsService(doer)
	ctx := context.Background()

	if _, err := svc.List(ctx, PermissionFilter{ModuleID: "m1"}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if got := doer.last(t).Query.Encode(); got != "moduleId=m1" {
		t.Errorf("unexpected query %q", got)
	}

	if _, err := svc.Create(ctx, domain.PermissionInput{ModuleID: "m1", Action: "approve"}); err == nil {
		t.Error("expected error for unknown action")
	}
	if doer.count() != 1 {
		t.Errorf("expected invalid permission not to be sent, got %d requests", doer.count())
	}
}

func TestUsersService_UpdateStatus(t *testing.T) {
	doer := newFakeDoer(ok(`{"status":true,"payload":{"id":"u1","status":"blocked"}}`))
	svc := NewUsersService(doer)

	user, err := svc.UpdateStatus(context.Background(), "u1", domain.UserStatusBlocked)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Status != domain.UserStatusBlocked {
		t.Errorf("unexpected status %s", user.Status)
	}
	if req := doer.last(t); req.Path != "/admin/users/u1/status" {
		t.Errorf("unexpected path %s", req.Path)
	}

	if _, err := svc.UpdateStatus(context.Background(), "u1", "suspended"); err == nil {
		t.Error("expected error for unknown status")
	}
}
