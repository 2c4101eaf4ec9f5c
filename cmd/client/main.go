package main

import (
	"entrykeeper/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
