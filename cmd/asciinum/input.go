package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/opal-lang/asciinum/internal/lineio"
)

// openInput handles the 3 modes of input:
// 1. stdin with -f - (the default)
// 2. a file with -f PATH
// 3. a followed file with -f PATH --follow
func openInput(ctx context.Context, file string, follow bool, stdin io.Reader) (io.Reader, func() error, error) {
	if file == "-" || file == "" {
		if follow {
			return nil, nil, &CLIError{
				Type:    "usage",
				Message: "--follow needs a file",
				Hint:    "pass the file to follow with -f PATH",
			}
		}
		return stdin, func() error { return nil }, nil
	}

	if follow {
		fr, err := lineio.Follow(ctx, file)
		if err != nil {
			return nil, nil, &CLIError{Type: "io", Message: err.Error()}
		}
		return fr, fr.Close, nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, nil, &CLIError{Type: "io", Message: fmt.Sprintf("error opening file %s: %v", file, err)}
	}
	return f, f.Close, nil
}
