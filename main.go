package main

import "github.com/theirongolddev/goalchaser/cmd"

func main() {
	cmd.Execute()
}
