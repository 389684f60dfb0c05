package main

import "toolbank-sync/cmd"

func main() {
	cmd.Execute()
}
