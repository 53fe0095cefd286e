package main

import "github/chapool/cngn-go/cmd"

func main() {
	cmd.Execute()
}
