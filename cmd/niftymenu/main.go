package main

import (
	"log"

	"github.com/trustme000777/niftymenu/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
