package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/MuhtasimTanmoy/powdr/internal/lexer"
	"github.com/MuhtasimTanmoy/powdr/pkg/token"
	"github.com/spf13/cobra"
)

var (
	lexEvalExpr   string
	lexShowPos    bool
	lexShowType   bool
	lexOnlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a PIL or ASM source file",
	Long: `Tokenize (lex) a source file and print the resulting token stream.

The lexer is shared between the PIL and ASM dialects; this command does
not distinguish between them. If no file is given, reads from stdin.

Examples:
  # Tokenize a file
  pilparse lex machine.asm

  # Tokenize an inline expression
  pilparse lex -e "a + b * c"

  # Show token types and positions
  pilparse lex --show-type --show-pos machine.asm`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline text instead of reading from a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "show only illegal tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	input, _, err := readSource(lexEvalExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	tokenCount, errorCount := 0, 0

	for {
		tok := l.NextToken()
		if lexOnlyErrors && tok.Type != token.ILLEGAL {
			if tok.Type == token.EOF {
				break
			}
			continue
		}

		tokenCount++
		if tok.Type == token.ILLEGAL {
			errorCount++
		}
		printToken(tok)

		if tok.Type == token.EOF {
			break
		}
	}

	for _, e := range l.Errors() {
		fmt.Fprintf(os.Stderr, "lexical error at %s: %s\n", e.Pos, e.Message)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("---\ntotal tokens: %d\n", tokenCount)
		if errorCount > 0 {
			fmt.Printf("errors: %d\n", errorCount)
		}
	}

	if errorCount > 0 || len(l.Errors()) > 0 {
		return fmt.Errorf("lexing found %d error(s)", errorCount+len(l.Errors()))
	}
	return nil
}

func printToken(tok token.Token) {
	var out string
	if lexShowType {
		out = fmt.Sprintf("[%-14s]", tok.Type)
	}
	switch {
	case tok.Type == token.EOF:
		out += " EOF"
	case tok.Type == token.ILLEGAL:
		out += fmt.Sprintf(" ILLEGAL: %q", tok.Literal)
	case tok.Literal == "":
		out += fmt.Sprintf(" %s", tok.Type)
	default:
		out += fmt.Sprintf(" %q", tok.Literal)
	}
	if lexShowPos {
		out += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(out)
}

func readSource(evalExpr string, args []string) (input, filename string, err error) {
	switch {
	case evalExpr != "":
		return evalExpr, "<eval>", nil
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}
}
