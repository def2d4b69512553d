package main

import (
	"os"

	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/snip/internal/cmd"
)

func main() {
	root, err := cmd.Build()
	if err != nil {
		msg.Error("%v", err)
		os.Exit(1)
	}

	if err := root.Execute(); err != nil {
		msg.Error("%v", err)
		os.Exit(1)
	}
}
