package main

import (
	"github.com/pixelbeak/arcade/internal/cli"
)

func main() {
	cli.Execute()
}
