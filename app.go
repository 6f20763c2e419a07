package main

import "github.com/alamaby/relnotes/cmd"

func main() {
	cmd.Run()
}
