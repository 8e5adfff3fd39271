package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// GetSimpleText prints prompt and returns the next trimmed line of input.
// A final line without a newline is accepted.
func GetSimpleText(reader *bufio.Reader, prompt string, out io.Writer) (string, error) {
	fmt.Fprintf(out, "%s: ", prompt)
	text, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// GetPassword reads a password without echo when stdin is a terminal and
// falls back to reading a plain line otherwise (pipes, tests).
func GetPassword(reader *bufio.Reader, out io.Writer) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		text, err := GetSimpleText(reader, "Password", out)
		if err != nil {
			return nil, err
		}
		return []byte(text), nil
	}

	fmt.Fprint(out, "Password: ")
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return nil, err
	}
	return password, nil
}
