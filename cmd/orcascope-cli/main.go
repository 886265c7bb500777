package main

import "orcascope/cmd/orcascope-cli/cmd"

func main() {
	cmd.Execute()
}
