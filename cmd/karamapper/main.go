// Command karamapper compiles a layered key-binding file into
// Karabiner-Elements rules.
package main

import (
	"os"

	"github.com/Pascal736/karamapper/cmd/karamapper/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
