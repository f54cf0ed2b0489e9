package main

import (
	"os"

	"github.com/Cenagaurav77/Present-App/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
