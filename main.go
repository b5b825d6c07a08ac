package main

import "github.com/gitaurr/gitaurr/cmd"

func main() {
	cmd.Execute()
}
