package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Shivam2709/attendance-cli/internal/session"
)

var (
	signupName     string
	signupEmail    string
	signupPassword string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account",
	RunE:  runSignup,
}

func init() {
	signupCmd.Flags().StringVarP(&signupName, "name", "n", "", "Full name")
	signupCmd.Flags().StringVarP(&signupEmail, "email", "e", "", "Account email")
	signupCmd.Flags().StringVarP(&signupPassword, "password", "p", "", "Account password (min 6 characters)")
}

func runSignup(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	name := signupName
	email := signupEmail
	password := signupPassword
	if name == "" {
		if name, err = readLine("Full name: "); err != nil {
			return err
		}
	}
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
	if name == "" || email == "" || password == "" {
		return errors.New("name, email and password are required")
	}
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}

	resp, err := a.client.Signup(cmd.Context(), name, email, password)
	if err != nil {
		a.notifier.Error(failMessage(err, "Signup failed"))
		return err
	}

	// A token in the signup response means auto-login; otherwise the
	// account exists but the user logs in explicitly.
	if resp.Token != "" {
		a.session.Login(resp.Token, session.RoleUser)
		a.notifier.Success("Account created, logged in as " + email)
	} else {
		a.notifier.Success("Account created; run 'attend login' to sign in")
	}
	return nil
}
