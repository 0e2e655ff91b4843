package main

import "github.com/heroesofcode/devmenu/cmd"

func main() {
	cmd.Execute()
}
