package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chmouel/lazycommit/internal/utils"
)

// promptable reports whether in can serve an interactive prompt. A nil
// reader cannot; a file can only when it is a terminal, so piped stdin
// falls back to the non-interactive path.
func promptable(in io.Reader) bool {
	if in == nil {
		return false
	}
	if f, ok := in.(*os.File); ok {
		return utils.IsTerminal(f.Fd())
	}
	return true
}

// SelectSuggestion prompts for one of the numbered suggestions already
// printed to out and returns the chosen message.
func SelectSuggestion(suggestions []string, stdin io.Reader, out io.Writer) (string, error) {
	fmt.Fprintf(out, "\nSelect a message to commit with [1-%d]: ", len(suggestions))

	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		return "", fmt.Errorf("selection cancelled")
	}

	text := strings.TrimSpace(scanner.Text())
	if text == "" {
		return "", fmt.Errorf("no message selected")
	}

	idx, err := strconv.Atoi(text)
	if err != nil {
		return "", fmt.Errorf("invalid selection: %q", text)
	}

	if idx < 1 || idx > len(suggestions) {
		return "", fmt.Errorf("selection out of range: %d (must be 1-%d)", idx, len(suggestions))
	}

	return suggestions[idx-1], nil
}
