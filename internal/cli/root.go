// Package cli implements the attend command surface. Each protected command
// runs through the route guard before touching the network, mirroring how
// the service's web client gates its pages.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

func init() {
	rootCmd = &cobra.Command{
		Use:   "attend",
		Short: "Attend - terminal client for the attendance service",
		Long: `Attend is a terminal client for the attendance and task-tracking service.

Log in once, then mark attendance and manage your task list from the shell.
Admins can view the day's attendance roster.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(configCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
