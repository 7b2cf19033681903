package main

import "github.com/pinpt/lineblame/cmd"

func main() {
	cmd.Execute()
}
