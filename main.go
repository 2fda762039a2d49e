package main

import (
	"os"

	"github.com/lmercadier/timetable/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
