package main

import "github.com/cycleworks/taskcycle/cmd"

func main() {
	cmd.Execute()
}
