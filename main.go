package main

import "github.com/quantboard/graphview/cmd"

func main() {
	cmd.Execute()
}
