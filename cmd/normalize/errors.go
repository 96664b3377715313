package main

import (
	"fmt"
	"io"

	"github.com/baditaflorin/go_text_frequency/internal/core/domain"
)

const usageLine = "normalize <document.txt> [-s] [-lr] [-l] [-st] [-p]"

// Exit codes.
const (
	exitFailure = 1
	exitUsage   = 2
)

func exitCode(err error) int {
	if domain.KindOf(err) == domain.KindUsage {
		return exitUsage
	}
	return exitFailure
}

// reportError prints err as a single line.
func reportError(w io.Writer, err error) {
	switch domain.KindOf(err) {
	case domain.KindUsage:
		fmt.Fprintf(w, "Error: %v. Should be of the form: %s\n", err, usageLine)
	case domain.KindInput:
		fmt.Fprintf(w, "Error: %v. Please check the file path.\n", err)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

// legacyFlags maps the two-letter single-dash flags of earlier releases to
// their long names. pflag would otherwise read "-lr" as "-l -r".
var legacyFlags = map[string]string{
	"-lr": "--lemmatize",
	"-st": "--stopwords",
}

// rewriteLegacyArgs replaces legacy flags. Arguments after "--" are kept.
func rewriteLegacyArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, a := range args {
		if a == "--" {
			return append(out, args[i:]...)
		}
		if long, ok := legacyFlags[a]; ok {
			a = long
		}
		out = append(out, a)
	}
	return out
}
