package main

import "github.com/emiliopalmerini/fitdash/internal/cli"

func main() {
	cli.Execute()
}
