package main

import "github.com/mj1618/outlook-a11y/cmd"

func main() {
	cmd.Execute()
}
