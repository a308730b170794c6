package main

import "github.com/kandidlabs/kandid-cli/cmd"

func main() {
	cmd.Execute()
}
