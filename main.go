package main

import "github.com/pacemeta/pacemeta/cmd"

func main() {
	cmd.Execute()
}
