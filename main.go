package main

import (
	"github.com/0xERR0R/pslsplit/cmd"
)

func main() {
	cmd.Execute()
}
