package main

import "github.com/notargets/gonavier/cmd"

func main() {
	cmd.Execute()
}
