package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dtroode/storefront/internal/model"
)

// Registrar registers users the same way the sign up form does.
type Registrar interface {
	Register(ctx context.Context, form model.SignUpForm) (model.User, error)
}

// NewUserCommand creates the user command group.
func NewUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	cmd.AddCommand(newUserCreateCommand())
	cmd.AddCommand(newUserDeleteCommand())

	return cmd
}

func newUserCreateCommand() *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user, prompting for the password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pass, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			return createUser(cmd.Context(), a.authService(), cmd.OutOrStdout(), model.SignUpForm{
				Name:     name,
				Email:    email,
				Password: pass,
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "user name")
	cmd.Flags().StringVar(&email, "email", "", "user email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newUserDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <email>",
		Short: "Delete a user together with its purchase transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			return deleteUser(cmd.Context(), a.conn, cmd.OutOrStdout(), args[0])
		},
	}
}

// readPassword prompts without echo on a terminal and reads one line
// otherwise.
func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		pass, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(pass), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func createUser(ctx context.Context, registrar Registrar, out io.Writer, form model.SignUpForm) error {
	user, err := registrar.Register(ctx, form)
	if err != nil {
		var domainErr *model.Error
		if errors.As(err, &domainErr) && !errors.Is(err, model.ErrInternal) {
			return errors.New(domainErr.Public())
		}
		return err
	}

	fmt.Fprintf(out, "user %d %s <%s>\n", user.ID, user.Name, user.Email)
	return nil
}

func deleteUser(ctx context.Context, transactor model.Transactor, out io.Writer, email string) error {
	var user model.User
	err := transactor.WithinTx(ctx, func(ctx context.Context, stores model.Stores) error {
		var err error
		user, err = stores.Users().GetByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("failed to get user by email: %w", err)
		}
		return stores.Users().Delete(ctx, user.ID)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "deleted user %d <%s>\n", user.ID, user.Email)
	return nil
}
