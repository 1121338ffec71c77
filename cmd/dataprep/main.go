package main

import "github.com/EdgeVLM-Labs/data-prep-lab/internal/cli"

func main() {
	cli.Execute()
}
