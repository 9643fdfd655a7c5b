package main

import (
	"os"

	"github.com/ameax/json-import-api-go/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
