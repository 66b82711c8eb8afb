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
	Whoami(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Dashboard(ctx context.Context) error
	CreateListing(ctx context.Context) error
	MyListings(ctx context.Context) error
	DeleteListing(ctx context.Context, id string) error
	Plans(ctx context.Context) error
	Subscribe(ctx context.Context) error
	SubscriptionStatus(ctx context.Context) error
	CancelSubscription(ctx context.Context) error
	Open(ctx context.Context, path string) error
}

// runREPL starts a simple read–eval–print loop for the Anuncia CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current account (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - plans          — browse subscription plans
//	  - open <path>    — navigate to a view by path
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - dashboard      — open the role dashboard with its counters
//	  - create         — create a listing (subject to the plan limit)
//	  - list           — list your own listings
//	  - delete <id>    — delete one of your listings
//	  - plans          — browse subscription plans
//	  - subscribe      — subscribe to a plan
//	  - status         — show the active plan and usage
//	  - cancel         — cancel the active subscription
//	  - whoami         — show the current account
//	  - profile        — edit name and phone
//	  - open <path>    — navigate to a view by path
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("anuncia %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, create, (l)ist, delete <id>, plans, subscribe, status, cancel, whoami, profile, open <path>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, plans, open <path>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "profile":
			_ = a.EditProfile(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "create":
			_ = a.CreateListing(ctx)

		case "l", "list":
			_ = a.MyListings(ctx)

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.DeleteListing(ctx, args[0])

		case "plans":
			_ = a.Plans(ctx)

		case "subscribe":
			_ = a.Subscribe(ctx)

		case "status":
			_ = a.SubscriptionStatus(ctx)

		case "cancel":
			_ = a.CancelSubscription(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <path>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
