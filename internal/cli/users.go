package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"feedback_app/internal/logger"
	"feedback_app/internal/service"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword reads a line from the terminal without echo.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

func newUsersCmd(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(newUsersAddCmd(state), newUsersDeleteCmd(state))
	return cmd
}

func newUsersAddCmd(state *cliState) *cobra.Command {
	var p service.RegisterParams

	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Add a new user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p.Username = args[0]
			out := cmd.OutOrStdout()

			password, err := promptPassword(out)
			if err != nil {
				return err
			}
			p.Password = password

			a, err := initApp(cmd.Context(), state.cfg, logger.Nop())
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.services.Authorization.Register(cmd.Context(), p); err != nil {
				if errors.Is(err, service.ErrDuplicateUser) {
					return fmt.Errorf("user already exists: %s", p.Username)
				}
				return fmt.Errorf("failed to create user: %w", err)
			}

			fmt.Fprintf(out, "User '%s' created successfully\n", p.Username)
			return nil
		},
	}
	cmd.Flags().StringVar(&p.Email, "email", "", "email address")
	cmd.Flags().StringVar(&p.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&p.LastName, "last-name", "", "last name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func promptPassword(out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter password: ")
	password, err := readPassword()
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(out, "Confirm password: ")
	confirm, err := readPassword()
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if string(password) != string(confirm) {
		return "", errors.New("passwords do not match")
	}
	if len(password) == 0 {
		return "", errors.New("password must not be empty")
	}
	return string(password), nil
}

func newUsersDeleteCmd(state *cliState) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <username>",
		Short: "Delete a user and all of their feedback",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]
			out := cmd.OutOrStdout()

			if !yes && !confirm(cmd.InOrStdin(), out, username) {
				fmt.Fprintln(out, "Cancelled")
				return nil
			}

			a, err := initApp(cmd.Context(), state.cfg, logger.Nop())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := deleteUser(cmd.Context(), a.services, username); err != nil {
				return err
			}
			fmt.Fprintf(out, "User '%s' deleted successfully\n", username)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	return cmd
}

// deleteUser removes the account on the owner's behalf.
func deleteUser(ctx context.Context, services *service.Service, username string) error {
	err := services.Authorization.DeleteUser(ctx, username, username)
	if errors.Is(err, service.ErrNotFound) {
		return fmt.Errorf("user not found: %s", username)
	}
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func confirm(in io.Reader, out io.Writer, username string) bool {
	fmt.Fprintf(out, "Are you sure you want to delete user '%s'? (yes/no): ", username)
	line, _ := bufio.NewReader(in).ReadString('\n')
	return strings.TrimSpace(line) == "yes"
}
