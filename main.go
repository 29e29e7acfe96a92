package main

import "github.com/josefigueredo/ableton-mcp-sub000/cmd"

func main() {
	cmd.Execute()
}
