package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/lsoto/mantcal/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// confirm blocks on a y/N prompt before destructive actions, mirroring the
// original's confirm() dialog. assumeYes (--yes) skips it for scripting.
func confirm(prompt string, assumeYes bool) bool {
	if assumeYes {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}

// machineName resolves a soft machine reference for display. A dangling or
// zero id renders empty rather than failing.
func machineName(ctx *Context, id int) string {
	if id == 0 {
		return ""
	}
	m, ok := ctx.Store.Machine(id)
	if !ok {
		return ""
	}
	return m.Name
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
