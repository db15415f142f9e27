package main

import (
	"github.com/Giulio2002/faster_digest/cmd"
)

func main() {
	cmd.Execute()
}
