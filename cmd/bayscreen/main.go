package main

import (
	"github.com/bayscreen/bayscreen/pkg/cli"
)

func main() {
	cli.Execute()
}
