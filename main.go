package main

import (
	"os"

	"github.com/danang/kuiskata/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
