package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input was
// read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password from the
// user's terminal without echo. A newline is printed after the read to keep
// the UI tidy.
func GetPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// GetLevel prompts for an integer level between 1 and 10, reprompting on
// invalid input.
func GetLevel(reader *bufio.Reader, name string, w io.Writer) (int, error) {
	for {
		line, err := GetSimpleText(reader, fmt.Sprintf("-Enter %s level (1-10)", name), w)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > 10 {
			fmt.Fprintf(w, "%s must be a number between 1 and 10\n", name)
			continue
		}
		return n, nil
	}
}

// GetOptionalHours prompts for a number of hours; an empty line means "not
// tracked" and returns nil.
func GetOptionalHours(reader *bufio.Reader, name string, w io.Writer) (*float64, error) {
	line, err := GetSimpleText(reader, fmt.Sprintf("-Enter %s hours (empty to skip)", name), w)
	if err != nil {
		return nil, err
	}
	if line == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil || v < 0 || v > 24 {
		fmt.Fprintf(w, "ignoring invalid %s hours %q\n", name, line)
		return nil, nil
	}
	return &v, nil
}

// GetCommaList prompts for a comma-separated list; an empty line returns nil.
func GetCommaList(reader *bufio.Reader, prompt string, w io.Writer) ([]string, error) {
	line, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return nil, err
	}
	if line == "" {
		return nil, nil
	}
	parts := strings.Split(line, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items, nil
}
