package main

import (
	"os"

	"github.com/alexbrand/livingdoc/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
