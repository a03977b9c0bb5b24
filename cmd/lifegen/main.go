// Command lifegen runs cellular automata from the terminal.
package main

import "lifegen/internal/cli"

func main() {
	cli.Execute()
}
