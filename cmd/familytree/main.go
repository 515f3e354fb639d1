// Command familytree validates and displays family record entities.
package main

import "github.com/mesh-intelligence/familytree/internal/cli"

func main() {
	cli.Execute()
}
