package main

import "mini-bank/internal/cli"

func main() {
	cli.Execute()
}
