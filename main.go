package main

import (
	"fmt"
	"os"

	"hashblog/service"
)

func main() {
	if err := service.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
