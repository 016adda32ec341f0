package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	UploadAvatar(ctx context.Context, path string) error
	ListTasks(ctx context.Context) error
	AddTask(ctx context.Context) error
	CompleteTask(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error
	ListEvents(ctx context.Context, month string) error
	Stats(ctx context.Context) error
	Quote(ctx context.Context) error
	Health(ctx context.Context) error
}

// runREPL reads commands from reader until EOF or exit. Command errors are
// reported by the commands themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "edvora %s> ", statusFn())

		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}

		cmd, args := parts[0], parts[1:]
		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}

		if !a.isLoggedIn() && requiresLogin(cmd) {
			fmt.Fprintln(out, "Please log in first")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: profile, avatar <file>, tasks, add, done <id>, delete <id>, events [YYYY-MM], stats, quote, health, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: register, login, quote, health, exit")
			}
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "avatar":
			if arg == "" {
				fmt.Fprintln(out, "Usage: avatar <image file>")
				continue
			}
			_ = a.UploadAvatar(ctx, arg)
		case "tasks":
			_ = a.ListTasks(ctx)
		case "add":
			_ = a.AddTask(ctx)
		case "done":
			if arg == "" {
				fmt.Fprintln(out, "Usage: done <id>")
				continue
			}
			_ = a.CompleteTask(ctx, arg)
		case "delete":
			if arg == "" {
				fmt.Fprintln(out, "Usage: delete <id>")
				continue
			}
			_ = a.DeleteTask(ctx, arg)
		case "events":
			_ = a.ListEvents(ctx, arg)
		case "stats":
			_ = a.Stats(ctx)
		case "quote":
			_ = a.Quote(ctx)
		case "health":
			_ = a.Health(ctx)
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

func requiresLogin(cmd string) bool {
	switch cmd {
	case "profile", "avatar", "tasks", "add", "done", "delete", "events", "stats", "logout":
		return true
	}
	return false
}
