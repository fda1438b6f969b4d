package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Quote(ctx context.Context) error
	Publish(ctx context.Context) error
	Read(ctx context.Context) error
	Status(ctx context.Context) error
	Pay(ctx context.Context) error
	List(ctx context.Context) error
	Pending(ctx context.Context) error
	Retry(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the writer CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - read           — fetch and unlock a published document
//	  - status         — check a document's unlock status
//	  - pay            — settle an unlock price
//	  - exit | quit    — leave the program
//
//	Logged in, additionally:
//	  - quote          — price a document without publishing
//	  - publish        — quote, assemble and broadcast a document
//	  - list           — list published works
//	  - pending        — list parked drafts awaiting retry
//	  - retry          — re-broadcast parked drafts
//	  - logout         — log out
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ink> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: quote, publish, read, status, pay, (l)ist, pending, retry, logout, exit")
			} else {
				printlnFn("Available commands: register, login, read, status, pay, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "quote":
			_ = a.Quote(ctx)

		case "publish":
			_ = a.Publish(ctx)

		case "read":
			_ = a.Read(ctx)

		case "status":
			_ = a.Status(ctx)

		case "pay":
			_ = a.Pay(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "pending":
			_ = a.Pending(ctx)

		case "retry":
			_ = a.Retry(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
