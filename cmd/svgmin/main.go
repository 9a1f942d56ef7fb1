package main

import "github.com/vasalvit/svgpath/internal/cli"

func main() {
	cli.Execute()
}
