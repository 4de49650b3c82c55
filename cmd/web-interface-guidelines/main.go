package main

import (
	"github.com/vercel-labs/web-interface-guidelines/internal/cli"
)

func main() {
	cli.Execute()
}
