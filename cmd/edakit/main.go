package main

import "edakit/internal/cli"

func main() {
	cli.Execute()
}
