package main

import "github.com/getcreddy/pokeid/cmd"

func main() {
	cmd.Execute()
}
