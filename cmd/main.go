package main

import (
	"log"
	"os"

	"meetingkeeper/internal/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		log.Printf("meetingkeeper: %v", err)
		os.Exit(1)
	}
}
