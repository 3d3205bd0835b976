package main

import "techpulse/cmd"

func main() {
	cmd.Execute()
}
