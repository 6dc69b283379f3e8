package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.userName != "" {
		return fmt.Sprintf("(%s) ", a.userName)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to AuthAPI CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
