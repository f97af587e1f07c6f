package main

import "github.com/citytransit/transitseed/cmd"

func main() {
	cmd.Execute()
}
