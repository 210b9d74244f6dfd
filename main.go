package main

import "httpintake/cmd"

func main() {
	cmd.Execute()
}
