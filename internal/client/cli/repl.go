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
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Update(ctx context.Context) error
	Delete(ctx context.Context) error
	Prices(ctx context.Context) error
	AddPrice(ctx context.Context) error
	UpdatePrice(ctx context.Context) error
	Shop(ctx context.Context) error
	Reserve(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the SpicesLink CLI.
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
//	  - register       — create a buyer account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - list           — list catalog products
//	  - add            — add a product
//	  - update         — update a product
//	  - delete         — delete a product
//	  - prices         — show a product's price history
//	  - addprice       — record a new price point
//	  - updateprice    — update an existing price point
//	  - shop           — show shop details for a product
//	  - reserve        — place a reservation
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are printed here; handlers do not
// need to report their own errors. This keeps the REPL loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	run := func(fn func(context.Context) error) {
		if err := fn(ctx); err != nil {
			printlnFn("Error:", err)
		}
	}

	for {
		printlnFn(fmt.Sprintf("sl> %s > ", statusFn()))
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
				printlnFn("Available commands: (l)ist, add, update, delete, prices, addprice, updateprice, shop, reserve, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			run(a.Register)

		case "login":
			run(a.Login)

		case "l", "list":
			run(a.List)

		case "add":
			run(a.Add)

		case "update":
			run(a.Update)

		case "delete":
			run(a.Delete)

		case "prices":
			run(a.Prices)

		case "addprice":
			run(a.AddPrice)

		case "updateprice":
			run(a.UpdatePrice)

		case "shop":
			run(a.Shop)

		case "reserve":
			run(a.Reserve)

		case "logout":
			run(a.Logout)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
