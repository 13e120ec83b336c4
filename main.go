package main

import "github.com/jsphweid/handsplit/cmd"

func main() {
	cmd.Execute()
}
