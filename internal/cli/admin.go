package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shivam2709/attendance-cli/internal/guard"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Admin views",
}

var adminTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's attendance roster",
	RunE:  runAdminToday,
}

func init() {
	adminCmd.AddCommand(adminTodayCmd)
}

func runAdminToday(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	return a.gate(guard.AdminOnly, func() error {
		records, err := a.client.TodayAttendance(cmd.Context())
		if err != nil {
			// A 401/403 here means the locally cached role lied; the
			// server is the real authority. Surface a notice and keep
			// the session as-is.
			a.notifier.Error(failMessage(err, "Access denied"))
			return nil
		}

		if len(records) == 0 {
			fmt.Println("No attendance records for today.")
			return nil
		}

		fmt.Printf("  %-24s  %s\n", "NAME", "EMAIL")
		for _, rec := range records {
			fmt.Printf("  %-24s  %s\n", rec.User.Name, rec.User.Email)
		}
		return nil
	})
}
