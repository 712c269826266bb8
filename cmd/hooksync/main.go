package main

import "hooksync/internal/cli"

func main() {
	cli.Execute()
}
