package main

import "mosaic-media/cmd/sitectl/cmd"

func main() {
	cmd.Execute()
}
