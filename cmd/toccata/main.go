package main

import "github.com/tsawler/toccata/internal/cli"

func main() {
	cli.Execute()
}
