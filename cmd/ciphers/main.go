package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers"
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/logging"
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/recipe"
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/registry"
)

func main() {
	log.SetFlags(0)
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		var cerr *ciphers.Error
		if errors.As(err, &cerr) {
			log.Printf("invalid key: %v", err)
			os.Exit(2)
		}
		log.Fatalf("ciphers: %v", err)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ciphers", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cipherName = fs.String("cipher", "", "cipher to apply: caesar, columnar_transposition, mono_alphabetic, rail_fence, vernam")
		key        = fs.String("key", "", "cipher key")
		decrypt    = fs.Bool("decrypt", false, "decrypt instead of encrypt")
		recipePath = fs.String("recipe", "", "run the pipeline in a .json or .yaml recipe file instead of a single cipher")
		reverse    = fs.Bool("reverse", false, "apply the inverse: the reversed recipe pipeline, or the opposite direction of -cipher")
		list       = fs.Bool("list", false, "list available operations and exit")
		verbose    = fs.Bool("verbose", false, "log each applied operation to stderr")
		version    = fs.Bool("version", false, "print version and exit")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *version {
		fmt.Fprintf(stdout, "simple-ciphers %s\n", ciphers.LibraryVersion())
		return nil
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	reg := registry.NewDefault(registry.WithLogger(logger))

	if *list {
		for _, op := range reg.List() {
			fmt.Fprintf(stdout, "%-32s %s\n", op.Name(), op.Description())
		}
		return nil
	}

	input, err := readInput(fs.Args(), stdin)
	if err != nil {
		return err
	}

	// -reverse undoes whatever the other flags describe, so it cancels
	// -decrypt.
	inverse := *decrypt != *reverse

	var output string
	switch {
	case *recipePath != "":
		rc, err := recipe.LoadFile(*recipePath)
		if err != nil {
			return fmt.Errorf("load recipe: %w", err)
		}
		if err := rc.Validate(reg); err != nil {
			return fmt.Errorf("recipe %s: %w", rc.Name, err)
		}
		p := &rc.Pipeline
		if inverse {
			if p, err = p.Reverse(reg); err != nil {
				return fmt.Errorf("recipe %s: %w", rc.Name, err)
			}
		}
		if output, err = p.Execute(ctx, reg, input); err != nil {
			return err
		}
	case *cipherName != "":
		typ := registry.OperationTypeEncrypt
		if *decrypt {
			typ = registry.OperationTypeDecrypt
		}
		op, ok := reg.Get(*cipherName + "_" + string(typ))
		if !ok {
			return fmt.Errorf("%w: %s", registry.ErrUnknownOperation, *cipherName)
		}
		if *reverse {
			if op, ok = op.Reverse(); !ok {
				return fmt.Errorf("%w: %s", registry.ErrNotReversible, *cipherName)
			}
		}
		output, err = reg.Execute(ctx, op.Name(), input, *key)
		if err != nil {
			return err
		}
	default:
		fs.Usage()
		return errors.New("one of -cipher or -recipe is required")
	}

	_, err = fmt.Fprintln(stdout, output)
	return err
}

// readInput joins the positional arguments, or reads stdin when there are none.
// A single trailing newline from stdin is dropped.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
