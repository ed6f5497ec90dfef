package main

import "github.com/user/cloudtune-cli/cmd"

func main() {
	cmd.Execute()
}
