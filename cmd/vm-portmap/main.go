package main

import "vm-portmap/internal/cli"

func main() {
	cli.Execute()
}
