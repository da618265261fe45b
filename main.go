package main

import "github.com/dupescout/dupescout/cmd"

func main() {
	cmd.Execute()
}
