package main

import (
	"log"

	"github.com/r-huijts/oorlogsbronnen-mcp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
