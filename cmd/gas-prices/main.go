package main

import "github.com/pfrederiksen/gas-prices/internal/cli"

func main() {
	cli.Execute()
}
