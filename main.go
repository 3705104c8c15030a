package main

import "github.com/datastax/action-table/cmd"

func main() {
	cmd.Execute()
}
