package main

import (
	"os"

	"housing-advantage/cli"
)

func main() {
	os.Exit(cli.Execute())
}
