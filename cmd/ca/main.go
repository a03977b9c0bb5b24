//go:build ebiten

package main

import (
	"lifegen/internal/app"
	"lifegen/internal/cli"
)

func main() {
	cli.ExecuteCommand(cli.NewStandaloneGUICommand("ca", app.Run))
}
