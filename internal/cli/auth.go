package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vietddude/touradmin/internal/core/domain"
	"github.com/vietddude/touradmin/internal/infra/api"
	"github.com/vietddude/touradmin/internal/infra/storage"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session",
	Long: `Sign in with an admin account. The password is read from $TOURADMIN_PASSWORD
when set, otherwise prompted for.`,
	Args: cobra.NoArgs,
	RunE: run(runLogin),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session and forget the stored tokens",
	Args:  cobra.NoArgs,
	RunE:  run(runLogout),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in admin",
	Args:  cobra.NoArgs,
	RunE:  run(runWhoami),
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "admin email")
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
}

func runLogin(s *session, cmd *cobra.Command, args []string) error {
	email := loginEmail
	if email == "" {
		email = os.Getenv("TOURADMIN_EMAIL")
	}
	if email == "" {
		var err error
		if email, err = prompt("Email: "); err != nil {
			return err
		}
	}

	password := os.Getenv("TOURADMIN_PASSWORD")
	if password == "" {
		var err error
		if password, err = promptPassword("Password: "); err != nil {
			return err
		}
	}

	out, err := s.svc.Auth.Login(s.ctx, domain.LoginInput{Email: email, Password: password})
	if err != nil {
		return err
	}

	name := email
	if out.Admin != nil && out.Admin.Name != "" {
		name = out.Admin.Name
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", name)
	return nil
}

func runLogout(s *session, cmd *cobra.Command, args []string) error {
	// Tokens are gone locally even when the server call fails.
	if err := s.svc.Auth.Logout(s.ctx); err != nil && !api.IsUnauthorized(err) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Signed out locally; server said: %v\n", err)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
	return nil
}

func runWhoami(s *session, cmd *cobra.Command, args []string) error {
	ok, err := storage.HasSession(s.ctx, s.app.Tokens)
	if err != nil {
		return err
	}
	if !ok {
		return storage.ErrNoSession
	}

	me, err := s.svc.Auth.Me(s.ctx)
	if err != nil {
		return err
	}

	w := newTable(cmd.OutOrStdout(), "ID", "NAME", "EMAIL", "ROLE", "LAST LOGIN")
	role := "-"
	if me.Role != nil {
		role = me.Role.Name
	}
	lastLogin := "-"
	if me.LastLoginAt != nil {
		lastLogin = formatDate(*me.LastLoginAt)
	}
	row(w, me.ID, me.Name, me.Email, role, lastLogin)
	return w.Flush()
}

func prompt(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return prompt(label)
	}
	fmt.Fprint(os.Stderr, label)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}
