package main

import "github.com/mouse-blink/svlint/cmd"

func main() {
	cmd.Execute()
}
