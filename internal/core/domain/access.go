package domain

import "time"

// Admin is a dashboard operator account.
type Admin struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	RoleID      string     `json:"roleId,omitempty"`
	Role        *Role      `json:"role,omitempty"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type AdminList struct {
	Admins     []Admin    `json:"admins"`
	Pagination Pagination `json:"pagination"`
}

type AdminInput struct {
	Name     string `json:"name"               validate:"required"`
	Email    string `json:"email"              validate:"required,email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8"`
	RoleID   string `json:"roleId"             validate:"required"`
	IsActive bool   `json:"isActive"`
}

// Role groups permissions granted to admins.
type Role struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Permissions []Permission `json:"permissions,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type RoleList struct {
	Roles      []Role     `json:"roles"`
	Pagination Pagination `json:"pagination"`
}

type RoleInput struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
}

// Module is an area of the dashboard that permissions are scoped to.
type Module struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Key         string `json:"key"`
	Description string `json:"description,omitempty"`
}

type ModuleList struct {
	Modules    []Module   `json:"modules"`
	Pagination Pagination `json:"pagination"`
}

type ModuleInput struct {
	Name        string `json:"name"        validate:"required"`
	Key         string `json:"key"         validate:"required"`
	Description string `json:"description"`
}

// Permission is a single action on a module, e.g. tours:update.
type Permission struct {
	ID       string `json:"id"`
	ModuleID string `json:"moduleId"`
	Action   string `json:"action"`
	Key      string `json:"key"`
}

type PermissionList struct {
	Permissions []Permission `json:"permissions"`
	Pagination  Pagination   `json:"pagination"`
}

type PermissionInput struct {
	ModuleID string `json:"moduleId" validate:"required"`
	Action   string `json:"action"   validate:"required,oneof=view create update delete"`
}
