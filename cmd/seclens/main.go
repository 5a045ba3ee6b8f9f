package main

import "github.com/seclens-labs/seclens-cli/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
