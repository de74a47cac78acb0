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
	Wardrobe(ctx context.Context) error
	AddItem(ctx context.Context) error
	DeleteItem(ctx context.Context) error
	Suggest(ctx context.Context) error
	Generate(ctx context.Context) error
	SaveLook(ctx context.Context) error
	Saved(ctx context.Context) error
	RenameLook(ctx context.Context) error
	DeleteLook(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	UploadPhoto(ctx context.Context) error
	Brands(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts the read-eval-print loop of the VibeLook shell.
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
//	Guest:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Signed in:
//	  - help           — show available commands
//	  - wardrobe | w   — list wardrobe items, optionally by category
//	  - additem        — add a clothing item with an optional photo
//	  - delitem        — delete a clothing item
//	  - suggest | s    — list AI-suggested looks
//	  - generate       — request a fresh suggestion
//	  - savelook       — persist a suggested look
//	  - saved          — list saved looks
//	  - renamelook     — rename a saved look (local)
//	  - dellook        — remove a saved look (local)
//	  - profile | p    — show the profile
//	  - edit           — edit the profile interactively
//	  - photo          — upload a profile photo
//	  - brands         — list partner brands
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("vl> %s > ", statusFn()))
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
				printlnFn("Available commands: (w)ardrobe, additem, delitem, (s)uggest, generate, savelook, saved, renamelook, dellook, (p)rofile, edit, photo, brands, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "w", "wardrobe":
			_ = a.Wardrobe(ctx)

		case "additem":
			_ = a.AddItem(ctx)

		case "delitem":
			_ = a.DeleteItem(ctx)

		case "s", "suggest":
			_ = a.Suggest(ctx)

		case "generate":
			_ = a.Generate(ctx)

		case "savelook":
			_ = a.SaveLook(ctx)

		case "saved":
			_ = a.Saved(ctx)

		case "renamelook":
			_ = a.RenameLook(ctx)

		case "dellook":
			_ = a.DeleteLook(ctx)

		case "p", "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "photo":
			_ = a.UploadPhoto(ctx)

		case "brands":
			_ = a.Brands(ctx)

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
