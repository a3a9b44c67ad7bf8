package main

import "pokepc-dataset/cmd"

func main() {
	cmd.Execute()
}
