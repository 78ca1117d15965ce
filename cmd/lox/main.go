// lox - interpreter for the Lox scripting language.
//
// With a script argument it runs the file and exits 65 on a syntax error
// or 70 on a runtime error. Without arguments it starts an interactive
// prompt where errors are reported but do not end the session.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	lox "github.com/reidenong/crafting-interpreters"
)

// cliConfig holds optional interactive settings, loaded from a .lox.yaml
// file in the working directory if one exists.
type cliConfig struct {
	Prompt string `yaml:"prompt"` // REPL prompt (default "> ")
	AST    bool   `yaml:"ast"`    // Dump the parsed tree instead of evaluating
}

func loadCLIConfig() cliConfig {
	cfg := cliConfig{Prompt: "> "}

	data, err := os.ReadFile(".lox.yaml")
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "lox: ignoring invalid .lox.yaml: %v\n", err)
		return cliConfig{Prompt: "> "}
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "> "
	}
	return cfg
}

var dumpAST bool

var rootCmd = &cobra.Command{
	Use:   "lox [script]",
	Short: "Lox interpreter",
	Long: `Lox is a small dynamically-typed scripting language.

With a script file, lox runs it and exits. Without arguments, lox starts
an interactive prompt.`,
	Version:       lox.Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadCLIConfig()
		if cmd.Flags().Changed("ast") {
			cfg.AST = dumpAST
		}

		if len(args) == 1 {
			return runFile(args[0], cfg)
		}
		return runPrompt(cfg)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&dumpAST, "ast", false, "print the parsed AST instead of evaluating")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lox: %v\n", err)
		os.Exit(lox.ExitUsage)
	}
}

// runFile runs a complete source file. Syntax and runtime errors have
// already been printed to stderr; the process exits with the conventional
// code for the error tier.
func runFile(path string, cfg cliConfig) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if cfg.AST {
		prog, err := lox.Compile(string(src))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(lox.ExitSyntax)
		}
		fmt.Print(prog.AST())
		return nil
	}

	if err := lox.Exec(string(src), os.Stdout, &lox.Config{Stderr: os.Stderr}); err != nil {
		os.Exit(lox.ExitCode(err))
	}
	return nil
}

// runPrompt runs the interactive loop. Each line is a complete program;
// error state does not carry over to the next line. An empty line or EOF
// ends the session.
func runPrompt(cfg cliConfig) error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(cfg.Prompt)
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			break
		}

		if cfg.AST {
			prog, err := lox.Compile(line)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			fmt.Print(prog.AST())
			continue
		}

		// Errors are reported to stderr by the pipeline; the returned
		// error only matters for exit codes in file mode.
		_ = lox.Exec(line, os.Stdout, &lox.Config{Stderr: os.Stderr})
	}

	return scanner.Err()
}
