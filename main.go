package main

import "github.com/stash-reader/stash-mcp/cmd"

func main() {
	cmd.Execute()
}
