package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shivam2709/attendance-cli/internal/api"
	"github.com/Shivam2709/attendance-cli/internal/guard"
	"github.com/Shivam2709/attendance-cli/internal/tasklist"
)

var (
	taskEditTitle string
	taskRmYes     bool
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage your task list",
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your tasks",
	RunE:  runTaskList,
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskAdd,
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a task between pending and completed",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskDone,
}

var taskEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task's title in place",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskEdit,
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskRm,
}

func init() {
	taskEditCmd.Flags().StringVarP(&taskEditTitle, "title", "t", "", "New title (prompts when omitted)")
	taskRmCmd.Flags().BoolVarP(&taskRmYes, "yes", "y", false, "Delete without asking for confirmation")

	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskEditCmd)
	taskCmd.AddCommand(taskRmCmd)
}

func runTaskList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	return a.gate(guard.Authenticated, func() error {
		syncer := tasklist.NewSyncer(a.client, a.notifier)
		if err := syncer.Refresh(cmd.Context()); err != nil {
			return err
		}
		printTasks(syncer.Tasks())
		return nil
	})
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	return a.gate(guard.Authenticated, func() error {
		syncer := tasklist.NewSyncer(a.client, a.notifier)
		title := strings.Join(args, " ")
		if err := syncer.Create(cmd.Context(), title); err != nil {
			return err
		}
		a.notifier.Success("Task created")
		printTasks(syncer.Tasks())
		return nil
	})
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	return a.gate(guard.Authenticated, func() error {
		syncer := tasklist.NewSyncer(a.client, a.notifier)
		if err := syncer.Refresh(cmd.Context()); err != nil {
			return err
		}

		task, err := resolveTask(syncer, args[0])
		if err != nil {
			return err
		}
		if err := syncer.Toggle(cmd.Context(), task); err != nil {
			return err
		}
		printTasks(syncer.Tasks())
		return nil
	})
}

func runTaskEdit(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	return a.gate(guard.Authenticated, func() error {
		syncer := tasklist.NewSyncer(a.client, a.notifier)
		if err := syncer.Refresh(cmd.Context()); err != nil {
			return err
		}

		task, err := resolveTask(syncer, args[0])
		if err != nil {
			return err
		}

		editor := tasklist.NewEditor(syncer)
		editor.StartEdit(task)

		title := taskEditTitle
		if title == "" {
			if title, err = readLine(fmt.Sprintf("New title [%s]: ", task.Title)); err != nil {
				return err
			}
		}
		if title != "" {
			if err := editor.ChangeDraft(title); err != nil {
				return err
			}
		}

		if err := editor.SaveEdit(cmd.Context()); err != nil {
			return err
		}
		a.notifier.Success("Task updated")
		printTasks(syncer.Tasks())
		return nil
	})
}

func runTaskRm(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	return a.gate(guard.Authenticated, func() error {
		syncer := tasklist.NewSyncer(a.client, a.notifier)
		if err := syncer.Refresh(cmd.Context()); err != nil {
			return err
		}

		task, err := resolveTask(syncer, args[0])
		if err != nil {
			return err
		}

		token := syncer.RequestDelete(task.ID)
		if !taskRmYes {
			answer, err := readLine(fmt.Sprintf("Delete %q? [y/N] ", task.Title))
			if err != nil {
				return err
			}
			if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
				syncer.CancelDelete(token)
				a.notifier.Success("Delete cancelled")
				return nil
			}
		}

		if err := syncer.ConfirmDelete(cmd.Context(), token); err != nil {
			return err
		}
		a.notifier.Success("Task deleted")
		printTasks(syncer.Tasks())
		return nil
	})
}

// resolveTask finds a cached task by full id or unique prefix.
func resolveTask(s *tasklist.Syncer, ref string) (api.Task, error) {
	if t, ok := s.Find(ref); ok {
		return t, nil
	}

	var match api.Task
	n := 0
	for _, t := range s.Tasks() {
		if strings.HasPrefix(t.ID, ref) {
			match = t
			n++
		}
	}
	switch n {
	case 1:
		return match, nil
	case 0:
		return api.Task{}, fmt.Errorf("no task with id %q", ref)
	default:
		return api.Task{}, fmt.Errorf("task id %q is ambiguous", ref)
	}
}

func printTasks(tasks []api.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks yet.")
		return
	}
	for _, t := range tasks {
		id := t.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Printf("  %-8s  %-9s  %s\n", id, t.Status, t.Title)
	}
}
