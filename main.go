package main

import "github.com/markprompt/markprompt/cmd"

func main() {
	cmd.Execute()
}
