package main

import (
	"os"

	"github.com/tunner/ada-struct-validation/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
