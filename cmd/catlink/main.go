package main

import "github.com/DengYiping/catlink-cli/internal/cli"

func main() {
	cli.Execute()
}
