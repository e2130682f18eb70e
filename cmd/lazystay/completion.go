package main

import (
	"context"
	"fmt"
	"os"

	"github.com/chmouel/lazystay/internal/completion"
	urfavecli "github.com/urfave/cli/v3"
)

const completionFlag = "--generate-shell-completion"

// completionArgs is swapped in tests.
var completionArgs = func() []string { return os.Args }

// completeRoot prints suggestions for the word being completed.
func completeRoot(_ context.Context, cmd *urfavecli.Command) {
	w := writerFor(cmd)
	for _, s := range completion.Suggest(completionWords(completionArgs())) {
		fmt.Fprintln(w, s)
	}
}

// completionWords strips the program name and everything from the
// completion flag on.
func completionWords(args []string) []string {
	if len(args) == 0 {
		return nil
	}
	words := args[1:]
	for i, word := range words {
		if word == completionFlag {
			return words[:i]
		}
	}
	return words
}
