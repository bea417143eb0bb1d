package main

import (
	"os"

	"github.com/jakobhellermann/beancount-paypal/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
