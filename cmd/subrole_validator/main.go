package main

import (
	"os"

	"github.com/aurceive/fighter-tools/internal/app"
)

func main() {
	os.Exit(app.RunSubroleValidator(app.Options{Args: os.Args[1:]}))
}
