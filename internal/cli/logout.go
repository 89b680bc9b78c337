package cli

import "github.com/spf13/cobra"

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the local session",
	RunE:  runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	a.session.Logout()
	a.notifier.Success("Logged out")
	return nil
}
