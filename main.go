package main

import "github.com/luminghao/godcps/cmd"

func main() {
	cmd.Execute()
}
