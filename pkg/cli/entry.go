// Package cli is the driver for the validation generator: it loads a
// declaration file, lets the user pick a type, and writes the result.
// All type-model and emission work lives under internal/.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/tunner/ada-struct-validation/internal/config"
	"github.com/tunner/ada-struct-validation/internal/generator"
	"github.com/tunner/ada-struct-validation/internal/registry"
)

func usage(out io.Writer, prog string) {
	fmt.Fprintf(out, "Usage: %s [options] <ada_spec_file> [type_name]\n", prog)
	fmt.Fprintf(out, "Options:\n")
	fmt.Fprintf(out, "  -input <name>   parameter name in the generated function (default %q)\n", config.DefaultInputName)
	fmt.Fprintf(out, "  -o <file>       output file; \"-\" writes to stdout\n")
}

type options struct {
	inputName string
	output    string
	file      string
	typeName  string
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}
	var positional []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-input", "--input":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("missing value for %s", args[i-1])
			}
			opts.inputName = args[i]
		case "-o", "--output":
			i++
			if i >= len(args) {
				return nil, fmt.Errorf("missing value for %s", args[i-1])
			}
			opts.output = args[i]
		case "-h", "--help", "-help":
			return nil, errHelp
		default:
			if strings.HasPrefix(args[i], "-") && args[i] != "-" {
				return nil, fmt.Errorf("unknown option: %s", args[i])
			}
			positional = append(positional, args[i])
		}
	}
	if len(positional) < 1 || len(positional) > 2 {
		return nil, fmt.Errorf("expected <ada_spec_file> [type_name]")
	}
	opts.file = positional[0]
	if len(positional) == 2 {
		opts.typeName = positional[1]
	}
	return opts, nil
}

var errHelp = fmt.Errorf("help requested")

// isSourceFile checks if a file has a recognized source extension.
func isSourceFile(path string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(strings.ToLower(path), ext) {
			return true
		}
	}
	return false
}

// selectType resolves the requested type name, interactively when none
// was given on the command line and stdin is a terminal.
func selectType(opts *options, names []string) (string, error) {
	if opts.typeName != "" {
		for _, name := range names {
			if strings.EqualFold(name, opts.typeName) {
				return name, nil
			}
		}
		return "", fmt.Errorf("type %q not found in the file (available: %s)",
			opts.typeName, strings.Join(names, ", "))
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return "", fmt.Errorf("no type name given and stdin is not a terminal")
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Fprint(os.Stdout, "\nEnter the name of the type to validate: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("reading selection: %w", err)
		}
		choice := strings.TrimSpace(line)
		for _, name := range names {
			if strings.EqualFold(name, choice) {
				return name, nil
			}
		}
		fmt.Fprintf(os.Stdout, "Type %q not found. Please choose from the list above.\n", choice)
	}
}

// Run executes the driver and returns the process exit code.
func Run(args []string) int {
	prog := filepath.Base(os.Args[0])
	opts, err := parseArgs(args)
	if err != nil {
		if err == errHelp {
			usage(os.Stdout, prog)
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		usage(os.Stderr, prog)
		return 1
	}

	cfg, err := config.FindConfig(filepath.Dir(opts.file))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}
	if opts.inputName == "" {
		opts.inputName = cfg.InputName
	}

	if !isSourceFile(opts.file, cfg.Extensions) {
		fmt.Fprintf(os.Stderr, "Warning: %s does not look like an Ada source file\n", opts.file)
	}

	src, err := os.ReadFile(opts.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %s\n", err)
		return 1
	}

	reg, err := registry.Build(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing declarations: %s\n", err)
		return 1
	}

	names := reg.RecordNames()
	if len(names) == 0 {
		fmt.Fprintf(os.Stderr, "No record types found in %s\n", opts.file)
		return 1
	}
	fmt.Fprintln(os.Stdout, "Found the following record types:")
	for i, name := range names {
		fmt.Fprintf(os.Stdout, "  %d. %s\n", i+1, name)
	}

	typeName, err := selectType(opts, names)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}

	text, err := generator.GenerateFile(reg, typeName, opts.inputName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating validation function: %s\n", err)
		return 1
	}

	if opts.output == "-" {
		fmt.Fprint(os.Stdout, text)
		return 0
	}
	outPath := opts.output
	if outPath == "" {
		outPath = filepath.Join(cfg.OutputDir,
			strings.ToLower(typeName)+config.OutputFileSuffix)
	}
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %s\n", err)
		return 1
	}
	fmt.Fprintf(os.Stdout, "\nValidation function generated successfully!\n")
	fmt.Fprintf(os.Stdout, "Output written to: %s\n", outPath)
	return 0
}
