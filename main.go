package main

import (
	"github.com/packwiz/cfinstall/cmd"
)

func main() {
	cmd.Execute()
}
