package main

import (
	"os"

	"github.com/bent101/wordle-matches/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewRootCommand()))
}
