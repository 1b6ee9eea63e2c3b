package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs. The real
// App satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	inDashboard() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Search(ctx context.Context) error
	ClearSearch()
	Show(ctx context.Context, arg string) error
	Favorite(ctx context.Context, arg string) error
	Dashboard(ctx context.Context) error
	Unfavorite(ctx context.Context, arg string) error
	Back()
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on a. The loop exits on scanner EOF
// or when the user types "exit" or "quit".
//
// Commands by view:
//
//	Anonymous:
//	  - help, login, register, search, clear, show <n>, exit | quit
//	Logged in, search view: additionally
//	  - fav <n>, dashboard, logout
//	Logged in, dashboard view:
//	  - unfav <n>, back, logout, exit | quit
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. The loop stays focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ehub %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			printHelp(a)

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "s", "search":
			_ = a.Search(ctx)

		case "clear":
			a.ClearSearch()

		case "show":
			if arg == "" {
				printlnFn("Usage: show <result number>")
				continue
			}
			_ = a.Show(ctx, arg)

		case "fav":
			if arg == "" {
				printlnFn("Usage: fav <result number>")
				continue
			}
			_ = a.Favorite(ctx, arg)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "unfav":
			if arg == "" {
				printlnFn("Usage: unfav <favorite number>")
				continue
			}
			_ = a.Unfavorite(ctx, arg)

		case "back":
			a.Back()

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	switch {
	case a.inDashboard():
		printlnFn("Available commands: unfav <n>, back, logout, exit")
	case a.isLoggedIn():
		printlnFn("Available commands: (s)earch, clear, show <n>, fav <n>, (d)ashboard, logout, exit")
	default:
		printlnFn("Available commands: (s)earch, clear, show <n>, login, register, exit")
	}
}
