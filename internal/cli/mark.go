package cli

import (
	"github.com/spf13/cobra"

	"github.com/Shivam2709/attendance-cli/internal/guard"
)

var markCmd = &cobra.Command{
	Use:   "mark",
	Short: "Mark today's attendance",
	RunE:  runMark,
}

func runMark(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	return a.gate(guard.Authenticated, func() error {
		msg, err := a.client.MarkAttendance(cmd.Context())
		if err != nil {
			a.notifier.Error(failMessage(err, "Failed to mark attendance"))
			return err
		}
		a.notifier.Success(msg)
		return nil
	})
}
