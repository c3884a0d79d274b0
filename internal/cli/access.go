package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vietddude/touradmin/internal/service"
)

var (
	accessList       service.ListParams
	permissionFilter service.PermissionFilter
)

var adminsCmd = &cobra.Command{
	Use:   "admins",
	Short: "List dashboard operators",
	Args:  cobra.NoArgs,
	RunE:  run(runAdminsList),
}

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Manage roles and their permissions",
}

var rolesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List roles",
	Args:  cobra.NoArgs,
	RunE:  run(runRolesList),
}

var rolesGrantCmd = &cobra.Command{
	Use:   "grant [role-id] [permission-id...]",
	Short: "Replace the permissions granted to a role",
	Args:  cobra.MinimumNArgs(1),
	RunE:  run(runRolesGrant),
}

var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "List permissions",
	Args:  cobra.NoArgs,
	RunE:  run(runPermissionsList),
}

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List dashboard modules",
	Args:  cobra.NoArgs,
	RunE:  run(runModulesList),
}

func init() {
	for _, c := range []*cobra.Command{adminsCmd, rolesListCmd, modulesCmd} {
		addListFlags(c.Flags(), &accessList)
	}
	addListFlags(permissionsCmd.Flags(), &permissionFilter.ListParams)
	permissionsCmd.Flags().StringVar(&permissionFilter.ModuleID, "module", "", "module id")

	rolesCmd.AddCommand(rolesListCmd, rolesGrantCmd)
	rootCmd.AddCommand(adminsCmd, rolesCmd, permissionsCmd, modulesCmd)
}

func runAdminsList(s *session, cmd *cobra.Command, args []string) error {
	list, err := s.svc.Admins.List(s.ctx, accessList)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := newTable(out, "ID", "NAME", "EMAIL", "ROLE", "ACTIVE")
	for _, a := range list.Admins {
		role := a.RoleID
		if a.Role != nil {
			role = a.Role.Name
		}
		row(w, a.ID, a.Name, a.Email, orDash(role), a.IsActive)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	printPagination(out, list.Pagination)
	return nil
}

func runRolesList(s *session, cmd *cobra.Command, args []string) error {
	list, err := s.svc.Roles.List(s.ctx, accessList)
	if err != nil {
		return err
	}

	w := newTable(cmd.OutOrStdout(), "ID", "NAME", "PERMISSIONS", "DESCRIPTION")
	for _, r := range list.Roles {
		keys := make([]string, 0, len(r.Permissions))
		for _, p := range r.Permissions {
			keys = append(keys, p.Key)
		}
		row(w, r.ID, r.Name, orDash(strings.Join(keys, ",")), orDash(r.Description))
	}
	return w.Flush()
}

func runRolesGrant(s *session, cmd *cobra.Command, args []string) error {
	role, err := s.svc.Roles.AssignPermissions(s.ctx, args[0], args[1:])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Role %s now has %d permissions\n", role.Name, len(role.Permissions))
	return nil
}

func runPermissionsList(s *session, cmd *cobra.Command, args []string) error {
	list, err := s.svc.Permissions.List(s.ctx, permissionFilter)
	if err != nil {
		return err
	}

	w := newTable(cmd.OutOrStdout(), "ID", "KEY", "MODULE", "ACTION")
	for _, p := range list.Permissions {
		row(w, p.ID, p.Key, p.ModuleID, p.Action)
	}
	return w.Flush()
}

func runModulesList(s *session, cmd *cobra.Command, args []string) error {
	list, err := s.svc.Modules.List(s.ctx, accessList)
	if err != nil {
		return err
	}

	w := newTable(cmd.OutOrStdout(), "ID", "KEY", "NAME")
	for _, m := range list.Modules {
		row(w, m.ID, m.Key, m.Name)
	}
	return w.Flush()
}
