package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
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
	Forgot(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Go(ctx context.Context, path string) error
	Where(ctx context.Context) error
	Theme(ctx context.Context, args []string) error
	Biometric(ctx context.Context, args []string) error
	Dismiss(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF, when ctx is done, or
// when the user types "exit" or "quit".
//
//	Not logged in:
//	  - help              show available commands
//	  - login             sign in
//	  - register          create an account and sign in
//	  - forgot            request a password reset
//	  - go <path>         navigate (the guard may redirect)
//	  - where             print the current location
//	  - theme [mode]      show or set light|dark|system
//	  - dismiss           clear the last error
//	  - exit | quit       leave the program
//
//	Logged in, additionally:
//	  - whoami            show the signed-in user
//	  - biometric [on|off] show or set the biometric flag
//	  - logout            sign out
//
// Errors returned by command handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("as %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, go <path>, where, theme [mode], biometric [on|off], forgot, dismiss, logout, exit")
			} else {
				printlnFn("Available commands: login, register, forgot, go <path>, where, theme [mode], dismiss, exit")
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "register":
			cmdErr = a.Register(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "forgot":
			cmdErr = a.Forgot(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "go":
			if len(args) != 1 {
				printlnFn("Usage: go <path>")
				continue
			}
			cmdErr = a.Go(ctx, args[0])

		case "where":
			cmdErr = a.Where(ctx)

		case "theme":
			cmdErr = a.Theme(ctx, args)

		case "biometric":
			cmdErr = a.Biometric(ctx, args)

		case "dismiss":
			cmdErr = a.Dismiss(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}
