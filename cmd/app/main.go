package main

import (
	"os"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
