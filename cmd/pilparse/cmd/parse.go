package cmd

import (
	"fmt"
	"os"

	"github.com/MuhtasimTanmoy/powdr/pkg/ast"
	"github.com/MuhtasimTanmoy/powdr/pkg/pilc"
	"github.com/MuhtasimTanmoy/powdr/pkg/source"
	"github.com/spf13/cobra"
)

var (
	parseMode     string
	parseEvalExpr string
	parseDumpAST  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a PIL or ASM source file and display the AST",
	Long: `Parse PIL (constraint) or ASM (module) source and display the
resulting Abstract Syntax Tree, or a located syntax error.

If no file is given, reads from stdin. Use -e to parse inline text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&parseMode, "mode", "pil", "dialect to parse: pil or asm")
	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline text instead of reading from a file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the full AST structure")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(parseEvalExpr, args)
	if err != nil {
		return err
	}
	_ = filename

	ctx := source.NewFileContext(input)

	switch parseMode {
	case "pil":
		file, err := pilc.ParsePILFile(input, ctx)
		if err != nil {
			return reportParseError(err)
		}
		if parseDumpAST {
			dumpPILFile(file)
		} else {
			fmt.Printf("PILFile: %d statement(s)\n", len(file.Statements))
		}
	case "asm":
		mod, err := pilc.ParseASMModule(input, ctx)
		if err != nil {
			return reportParseError(err)
		}
		if parseDumpAST {
			dumpASMModule(mod, 0)
		} else {
			fmt.Printf("ASMModule: %d statement(s)\n", len(mod.Statements))
		}
	default:
		return fmt.Errorf("unknown --mode %q, expected pil or asm", parseMode)
	}
	return nil
}

func reportParseError(err error) error {
	if pe, ok := err.(*pilc.ParseError); ok {
		fmt.Fprintf(os.Stderr, "%s\n", pe.Error())
		return fmt.Errorf("parsing failed")
	}
	return err
}

func dumpPILFile(f *ast.PILFile) {
	fmt.Printf("PILFile (%d statements)\n", len(f.Statements))
	for _, s := range f.Statements {
		fmt.Printf("  %T\n", s)
	}
}

func dumpASMModule(m *ast.ASMModule, indent int) {
	pad := indentStr(indent)
	fmt.Printf("%sASMModule (%d statements)\n", pad, len(m.Statements))
	for _, s := range m.Statements {
		fmt.Printf("%s  %T %s\n", pad, s, s.Name)
		if s.Machine != nil {
			for _, ms := range s.Machine.Statements {
				fmt.Printf("%s    %T\n", pad, ms)
			}
		}
		if s.Module != nil && s.Module.Body != nil {
			dumpASMModule(s.Module.Body, indent+2)
		}
	}
}

func indentStr(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += "  "
	}
	return out
}
