package main

import "github.com/tinne26/asciipng/cmd"

func main() {
	cmd.Execute()
}
