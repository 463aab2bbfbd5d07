package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/astrosched/internal/clock"
	"github.com/danieljhkim/astrosched/internal/schedule"
	"github.com/danieljhkim/astrosched/internal/taskinput"
)

// errBadID indicates a task id argument that is not a positive number.
var errBadID = errors.New("invalid ID, please enter a number")

// newSessionRoot builds the command tree understood inside a shell or
// script. Every command works on s.store.
func newSessionRoot(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:           "astrosched",
		Short:         "Daily schedule commands",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetOut(s.out)
	root.SetErr(s.printer.errOut)
	root.SetHelpFunc(customHelpFunc)

	root.AddGroup(&cobra.Group{ID: "scheduling", Title: "Scheduling:"})
	root.AddGroup(&cobra.Group{ID: "status", Title: "Task Status:"})
	root.AddGroup(&cobra.Group{ID: "viewing", Title: "Viewing:"})

	for _, cmd := range []*cobra.Command{newAddCmd(s), newRmCmd(s), newEditCmd(s)} {
		cmd.GroupID = "scheduling"
		root.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{newMarkCmd(s), newDoneCmd(s, true), newDoneCmd(s, false)} {
		cmd.GroupID = "status"
		root.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{newListCmd(s), newShowCmd(s), newPriorityCmd(s), newNextCmd(s)} {
		cmd.GroupID = "viewing"
		root.AddCommand(cmd)
	}
	return root
}

func newAddCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "add <description> <start> <end> <priority>",
		Short: "Add a task if it overlaps no other task",
		Long: `Add a task to today's schedule.

Times use HH:mm or H:mm on a 24-hour clock. Priority is High, Medium or Low.
A task may start exactly when another ends.`,
		Example: `  add "Morning exercise" 7:00 8:00 high`,
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := taskinput.Build(args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}

			added, err := s.store.Add(task)
			if err != nil {
				return err
			}

			if s.jsonMode {
				return s.outputJSON(added)
			}
			s.printer.Success(fmt.Sprintf("Task added successfully. No conflicts. (ID %d)", added.ID))
			return nil
		},
	}
}

func newRmCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := s.store.Remove(id); err != nil {
				return err
			}

			if s.jsonMode {
				return s.outputJSON(map[string]any{"success": true, "removed": id})
			}
			s.printer.Success("Task removed successfully.")
			return nil
		},
	}
}

func newEditCmd(s *session) *cobra.Command {
	var edit taskinput.Edit

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a task's description, times or priority",
		Long: `Edit a task. Fields whose flag is not given keep their current value.

The edited task must not overlap any other task; on conflict the task is
left exactly as it was.`,
		Example: `  edit 2 --start 9:30 --end 10:15
  edit 3 --desc "Hull inspection" --priority low`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			current, ok := s.store.FindByID(id)
			if !ok {
				return &schedule.NotFoundError{ID: id}
			}

			description, start, end, priority, err := edit.Apply(current)
			if err != nil {
				return err
			}
			if err := s.store.Edit(id, description, start, end, priority); err != nil {
				return err
			}

			if s.jsonMode {
				updated, _ := s.store.FindByID(id)
				return s.outputJSON(updated)
			}
			s.printer.Success("Task updated successfully.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&edit.Description, "desc", "d", "", "New description")
	cmd.Flags().StringVarP(&edit.Start, "start", "s", "", "New start time (HH:mm)")
	cmd.Flags().StringVarP(&edit.End, "end", "e", "", "New end time (HH:mm)")
	cmd.Flags().StringVarP(&edit.Priority, "priority", "p", "", "New priority (High, Medium, Low)")
	return cmd
}

func newMarkCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "mark <id> <yes|no>",
		Short: "Mark a task as completed (yes) or pending (no)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return setStatus(s, id, taskinput.ParseCompleted(args[1]))
		},
	}
}

// newDoneCmd builds "done" or, when completed is false, "pending".
func newDoneCmd(s *session, completed bool) *cobra.Command {
	use, short := "done <id>", "Mark a task as completed"
	if !completed {
		use, short = "pending <id>", "Mark a task as pending"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return setStatus(s, id, completed)
		},
	}
}

func setStatus(s *session, id int, completed bool) error {
	if err := s.store.SetCompleted(id, completed); err != nil {
		return err
	}

	if s.jsonMode {
		task, _ := s.store.FindByID(id)
		return s.outputJSON(task)
	}
	s.printer.Success("Task status updated.")
	return nil
}

func newListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "view"},
		Short:   "List all tasks ordered by start time",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := s.store.ListAll()
			if s.jsonMode {
				return s.outputJSON(tasks)
			}
			s.printer.Tasks("All Scheduled Tasks", tasks, "No tasks scheduled for the day.")
			return nil
		},
	}
}

func newShowCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			task, ok := s.store.FindByID(id)
			if !ok {
				return &schedule.NotFoundError{ID: id}
			}

			if s.jsonMode {
				return s.outputJSON(task)
			}
			s.printer.Section(fmt.Sprintf("Task %d", task.ID))
			s.printer.LabelValue("Description", task.Description)
			s.printer.LabelValue("Time", fmt.Sprintf("%s - %s", task.Start, task.End))
			s.printer.LabelValue("Priority", task.Priority.String())
			s.printer.LabelValue("Status", task.Status())
			return nil
		},
	}
}

func newPriorityCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "priority <high|medium|low>",
		Short: "List tasks with one priority",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := taskinput.ParsePriority(args[0])
			if err != nil {
				return err
			}

			tasks := s.store.ListByPriority(p)
			if s.jsonMode {
				return s.outputJSON(tasks)
			}
			s.printer.Tasks(fmt.Sprintf("Tasks with Priority: %s", p), tasks,
				fmt.Sprintf("No tasks found with priority: %s", p))
			return nil
		},
	}
}

func newNextCmd(s *session) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next pending task",
		Long:  `Show the earliest pending task starting at or after the current time (or --at).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from := clock.CurrentTimeOfDay(s.clock)
			if at != "" {
				var err error
				if from, err = taskinput.ParseTime(at); err != nil {
					return err
				}
			}

			task, ok := s.store.Next(from)
			if s.jsonMode {
				if !ok {
					return s.outputJSON(nil)
				}
				return s.outputJSON(task)
			}
			if !ok {
				s.printer.EmptyState(fmt.Sprintf("No pending tasks from %s.", from))
				return nil
			}
			s.printer.Section(fmt.Sprintf("Next from %s", from))
			s.printer.Task(task)
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Look from this time instead of now (HH:mm)")
	return cmd
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errBadID, arg)
	}
	return id, nil
}
