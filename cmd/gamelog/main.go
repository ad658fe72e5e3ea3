package main

import "gamelog/backend/cmd/gamelog/commands"

func main() {
	commands.Execute()
}
