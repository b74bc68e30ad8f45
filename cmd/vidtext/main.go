package main

import "github.com/forPelevin/vidtext/internal/cli"

func main() {
	cli.Main()
}
