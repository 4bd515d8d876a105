package main

import (
	"github.com/daedaleanai/holbuild/cmd"
)

func main() {
	cmd.Execute()
}
