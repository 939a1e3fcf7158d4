package main

import "github.com/dotcommander/physioscore/cmd"

func main() {
	cmd.Execute()
}
