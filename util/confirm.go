package util

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConfirmAction asks the user a yes/no question and reads one line from in.
// Anything other than "y" or "yes" is a refusal.
func ConfirmAction(prompt string, in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprintf(out, "%s (y/N): ", prompt)
	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
