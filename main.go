package main

import "github.com/spalmeida/verifica-sites/cmd"

// execCmd is indirected so tests can stub the command dispatch.
var execCmd = cmd.Execute

func main() {
	execCmd()
}
