package main

import "github.com/cheerioskun/slotpick/internal/cmd"

func main() {
	cmd.Execute()
}
