package main

import (
	"fmt"
	"os"

	"github.com/abhisek/studyplan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "studyplan:", err)
		os.Exit(1)
	}
}
