package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword and stdinFd stand in for the terminal in tests.
var (
	readPassword = term.ReadPassword
	stdinFd      = func() int { return int(os.Stdin.Fd()) }
)

// GetSimpleText asks one question of the REPL user, for example
// "Enter username" or "Enter email", and returns the trimmed answer.
// The question is written on its own line with a "> " cursor under it.
// An answer cut short by EOF still counts; EOF with no answer is an error.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s\n> ", prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword writes "<prompt>: " and reads a secret from the terminal with
// echo off. The caller owns the returned bytes and wipes them.
func GetPassword(w io.Writer, prompt string) ([]byte, error) {
	if _, err := fmt.Fprintf(w, "%s: ", prompt); err != nil {
		return nil, err
	}
	pw, err := readPassword(stdinFd())
	// echo is off, so the user's Enter never reached the screen
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}
