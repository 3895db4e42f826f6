package main

import "github.com/goliatone/go-resumegen/internal/cli"

func main() {
	cli.Execute()
}
