package main

import "github.com/Neixam/smalljs/cmd"

func main() {
	cmd.Execute()
}
