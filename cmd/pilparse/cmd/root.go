package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "pilparse",
	Short: "PIL/ASM parser front-end",
	Long: `pilparse is a Go implementation of the powdr constraint/assembly
parser front-end.

It tokenizes and parses the two source dialects this toolchain reads:
  - PIL, the polynomial-constraint language
  - ASM, the assembly-machine module language

sharing one expression grammar between them. This tool performs no
evaluation, solving, or semantic validation beyond the grammar; it stops
at the first syntax error it finds.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
