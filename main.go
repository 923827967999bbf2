package main

import "dataqa/cmd"

func main() {
	cmd.Execute()
}
