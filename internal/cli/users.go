package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietddude/touradmin/internal/core/domain"
	"github.com/vietddude/touradmin/internal/service"
)

var userFilter service.UserFilter

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage customer accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	Args:  cobra.NoArgs,
	RunE:  run(runUsersList),
}

var usersBlockCmd = &cobra.Command{
	Use:   "block [id]",
	Short: "Block a user",
	Args:  cobra.ExactArgs(1),
	RunE:  run(setUserStatus(domain.UserStatusBlocked)),
}

var usersUnblockCmd = &cobra.Command{
	Use:   "unblock [id]",
	Short: "Re-activate a blocked user",
	Args:  cobra.ExactArgs(1),
	RunE:  run(setUserStatus(domain.UserStatusActive)),
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE:  run(runUsersDelete),
}

func init() {
	f := usersListCmd.Flags()
	addListFlags(f, &userFilter.ListParams)
	f.StringVar((*string)(&userFilter.Status), "status", "", "active or blocked")

	usersCmd.AddCommand(usersListCmd, usersBlockCmd, usersUnblockCmd, usersDeleteCmd)
	rootCmd.AddCommand(usersCmd)
}

func runUsersList(s *session, cmd *cobra.Command, args []string) error {
	list, err := s.svc.Users.List(s.ctx, userFilter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := newTable(out, "ID", "NAME", "EMAIL", "PHONE", "STATUS", "JOINED")
	for _, u := range list.Users {
		row(w, u.ID, u.Name, u.Email, orDash(u.Phone), u.Status, formatDate(u.CreatedAt))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	printPagination(out, list.Pagination)
	return nil
}

func setUserStatus(status domain.UserStatus) func(*session, *cobra.Command, []string) error {
	return func(s *session, cmd *cobra.Command, args []string) error {
		u, err := s.svc.Users.UpdateStatus(s.ctx, args[0], status)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "User %s is now %s\n", u.ID, u.Status)
		return nil
	}
}

func runUsersDelete(s *session, cmd *cobra.Command, args []string) error {
	if err := s.svc.Users.Delete(s.ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s\n", args[0])
	return nil
}
