package main

import (
	"context"
	"fmt"
	"os"

	"travel-calc/internal/cli"
)

func main() {
	root := cli.NewRootCommand()

	if err := root.ExecuteContext(context.Background()); err != nil {
		handler := cli.NewErrorHandler()
		fmt.Fprintf(os.Stderr, "Error: %v\n", handler.HandleSimple(err))
		os.Exit(handler.ExitCode(err))
	}
}
