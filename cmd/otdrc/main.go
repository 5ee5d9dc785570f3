package main

import "github.com/OpenTraceLab/OpenTraceDRC/cmd/otdrc/cmd"

func main() {
	cmd.Execute()
}
