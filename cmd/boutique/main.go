package main

import (
	"fmt"
	"os"
)

func main() {
	root, closeApp := newRootCmd()

	err := root.Execute()
	if cerr := closeApp(); cerr != nil {
		fmt.Fprintln(os.Stderr, "close:", cerr)
	}
	if err != nil {
		os.Exit(1)
	}
}
