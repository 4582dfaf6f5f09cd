package main

import "github.com/notargets/aerostruct/cmd"

func main() {
	cmd.Execute()
}
