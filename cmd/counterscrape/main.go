package main

import "counterscrape/internal/cli"

func main() {
	cli.Execute()
}
