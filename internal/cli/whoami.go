package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE:  runWhoami,
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	snap := a.session.Snapshot()
	if !snap.LoggedIn() {
		fmt.Println("Not logged in.")
		return nil
	}

	role := snap.Role
	if role == "" {
		role = "unknown"
	}
	fmt.Printf("Logged in (role: %s)\n", role)
	return nil
}
