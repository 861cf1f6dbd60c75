package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

type termPasswordReader struct {
	fd  int
	in  *bufio.Reader
	out io.Writer
}

// ReadPassword prints prompt and reads one line. On a terminal the input is
// not echoed; otherwise the line is read from in as is.
func (r *termPasswordReader) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	if term.IsTerminal(r.fd) {
		b, err := term.ReadPassword(r.fd)
		fmt.Fprintln(r.out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}

	line, err := r.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
