// Command todo is a terminal front end for the task API. It drives the
// client store: list and filter tasks, add, toggle, edit, delete, and clear
// completed tasks.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"todolist/internal/client"
	"todolist/internal/client/api"
	"todolist/internal/config"
	"todolist/internal/core/domain"
)

const (
	exitOK           = 0
	exitUserError    = 1
	exitBackendError = 2
)

const usage = `usage: todo <command> [arguments]

Commands:
  list [-filter all|active|completed]  List tasks
  add <text...>                        Add a task
  toggle <id>                          Toggle a task's completed state
  edit <id> <text...>                  Replace a task's text
  rm <id> [-yes]                       Delete a task
  clear                                Delete all completed tasks
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 {
		args = []string{"list"}
	}

	cfg := config.LoadConfig()
	notifier := client.NotifierFunc(func(n client.Notification) {
		w := out
		if n.Severity == client.SeverityError {
			w = errOut
		}
		fmt.Fprintf(w, "%s: %s\n", n.Title, n.Description)
	})
	store := client.NewStore(api.New(cfg.ApiBaseURL), notifier)

	ctx := context.Background()
	if err := store.Refresh(ctx); err != nil {
		fmt.Fprintf(errOut, "error: could not reach task service: %v\n", err)
		return exitBackendError
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "list":
		return runList(store, rest, out, errOut)
	case "add":
		return runAdd(ctx, store, rest, errOut)
	case "toggle":
		return runToggle(ctx, store, rest, errOut)
	case "edit":
		return runEdit(ctx, store, rest, errOut)
	case "rm":
		return runRemove(ctx, store, rest, in, out, errOut)
	case "clear":
		return runClear(ctx, store)
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
		return exitOK
	default:
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmd)
		fmt.Fprint(errOut, usage)
		return exitUserError
	}
}

func runList(store *client.Store, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	filterValue := fs.String("filter", string(domain.FilterAll), "")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitUserError
	}

	filter, err := domain.ParseFilter(*filterValue)
	if err != nil {
		fmt.Fprintf(errOut, "error: unknown filter: %s\n", *filterValue)
		return exitUserError
	}
	store.SetFilter(filter)

	for _, task := range store.VisibleTasks() {
		mark := " "
		if task.Completed {
			mark = "x"
		}
		fmt.Fprintf(out, "[%s] %d\t%s\n", mark, task.ID, task.Text)
	}

	total, _, remaining := store.Counts()
	noun := "tasks"
	if total == 1 {
		noun = "task"
	}
	fmt.Fprintf(out, "%d %s (%d remaining)\n", total, noun, remaining)
	return exitOK
}

func runAdd(ctx context.Context, store *client.Store, args []string, errOut io.Writer) int {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(errOut, "error: task text required")
		return exitUserError
	}

	if err := store.AddTask(ctx, text); err != nil {
		return exitBackendError
	}
	return exitOK
}

func runToggle(ctx context.Context, store *client.Store, args []string, errOut io.Writer) int {
	id, ok := parseID(args, errOut)
	if !ok {
		return exitUserError
	}

	if err := store.ToggleTask(ctx, id); err != nil {
		return exitBackendError
	}
	return exitOK
}

func runEdit(ctx context.Context, store *client.Store, args []string, errOut io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: usage: todo edit <id> <text...>")
		return exitUserError
	}

	id, ok := parseID(args[:1], errOut)
	if !ok {
		return exitUserError
	}

	if _, found := store.BeginEdit(id); !found {
		fmt.Fprintf(errOut, "error: no task with id %d\n", id)
		return exitUserError
	}

	if err := store.SubmitEdit(ctx, strings.Join(args[1:], " ")); err != nil {
		store.CancelEdit()
		return exitBackendError
	}
	return exitOK
}

func runRemove(ctx context.Context, store *client.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("rm", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	yes := fs.Bool("yes", false, "")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitUserError
	}

	id, ok := parseID(fs.Args(), errOut)
	if !ok {
		return exitUserError
	}

	store.RequestDelete(id)

	if !*yes {
		fmt.Fprintf(out, "delete task %d? [y/N] ", id)
		answer, _ := bufio.NewReader(in).ReadString('\n')
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			store.CancelDelete()
			fmt.Fprintln(out, "cancelled")
			return exitOK
		}
	}

	if err := store.ConfirmDelete(ctx); err != nil {
		return exitBackendError
	}
	return exitOK
}

func runClear(ctx context.Context, store *client.Store) int {
	if err := store.ClearCompleted(ctx); err != nil {
		return exitBackendError
	}
	return exitOK
}

func parseID(args []string, errOut io.Writer) (uint64, bool) {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: task id required")
		return 0, false
	}

	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil || id == 0 {
		fmt.Fprintf(errOut, "error: invalid task id: %s\n", args[0])
		return 0, false
	}
	return id, true
}
