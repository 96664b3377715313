// Command normalize prints the most and least frequent tokens of a plain-text
// document after optional normalization, and can draw them as PDF bar charts.
//
//	normalize myfile.txt -l -p
//	normalize myfile.txt -s -lr -st --chart-out freq.pdf
package main

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

func main() {
	os.Exit(run(os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, fs afero.Fs, stdout, stderr io.Writer) int {
	cmd := newRootCommand(fs, stdout, stderr)
	cmd.SetArgs(rewriteLegacyArgs(args))
	if err := cmd.Execute(); err != nil {
		reportError(stderr, err)
		return exitCode(err)
	}
	return 0
}
