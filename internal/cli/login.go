package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Shivam2709/attendance-cli/internal/session"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the attendance service",
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	email := loginEmail
	password := loginPassword
	if email == "" {
		if email, err = readLine("Email: "); err != nil {
			return err
		}
	}
	if password == "" {
		if password, err = readLine("Password: "); err != nil {
			return err
		}
	}
	if email == "" || password == "" {
		return errors.New("email and password are required")
	}

	resp, err := a.client.Login(cmd.Context(), email, password)
	if err != nil {
		a.notifier.Error(failMessage(err, "Login failed"))
		return err
	}

	a.session.Login(resp.Token, session.Role(resp.Role))
	a.notifier.Success("Logged in as " + email)
	return nil
}
