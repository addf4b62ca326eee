package main

import (
	"flag"
	"fmt"
	"os"
)

func showUsage() {
	fmt.Fprintf(os.Stderr, `rvcc - A tiny expression compiler targeting RV64 assembly

Usage:
    rvcc <source>             Compile a source string to assembly on stdout
    rvcc <command> [arguments]

Commands:
    build <source>   Compile a source string to an assembly file
    ast <source>     Print the parsed AST as an s-expression
    tokens <source>  Print the token stream
    help             Show this help message

Examples:
    rvcc '1+2*3;'
    rvcc build -o out.s '5>=5;'
    rvcc ast '(5+5)*3;'
`)
}

func buildCommand(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	output := fs.String("o", "out.s", "Output file path")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rvcc build [-o output] <source>\n")
		fmt.Fprintf(os.Stderr, "Compile a source string to an assembly file\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one source argument\n")
		fs.Usage()
		os.Exit(1)
	}

	asm, err := Compile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Compilation failed: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, []byte(asm), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing assembly file %s: %v\n", *output, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s (%d bytes)\n", *output, len(asm))
}

func astCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: rvcc ast <source>\n")
		os.Exit(1)
	}

	tokens, err := Tokenize(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Compilation failed: %v\n", err)
		os.Exit(1)
	}

	prog, err := Parse(tokens)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Compilation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(ToSExpr(prog))
}

func tokensCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: rvcc tokens <source>\n")
		os.Exit(1)
	}

	tokens, err := Tokenize(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Compilation failed: %v\n", err)
		os.Exit(1)
	}

	for _, tok := range tokens {
		fmt.Printf("%d\t%s\t%q\n", tok.Pos, tok.Type, tok.Literal)
	}
}

// Compile runs the full pipeline on one source string. On error no
// assembly text is returned.
func Compile(src string) (string, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return "", fmt.Errorf("lex error: %w", err)
	}

	prog, err := Parse(tokens)
	if err != nil {
		return "", fmt.Errorf("parse error: %w", err)
	}

	return Generate(prog), nil
}

func main() {
	if len(os.Args) < 2 {
		showUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "build":
		buildCommand(args)
	case "ast":
		astCommand(args)
	case "tokens":
		tokensCommand(args)
	case "help", "-h", "--help":
		showUsage()
	default:
		// The bare form takes the source string as the only argument
		// and writes assembly to stdout.
		if len(os.Args) != 2 {
			fmt.Fprintf(os.Stderr, "Error: expected exactly one source argument\n\n")
			showUsage()
			os.Exit(1)
		}
		asm, err := Compile(command)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Compilation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(asm)
	}
}
