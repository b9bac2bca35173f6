package main

import (
	"os"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout).execute(os.Args[1:], os.Stderr); err != nil {
		os.Exit(1)
	}
}
