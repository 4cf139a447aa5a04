package main

import "lmu-times-deploy/internal/cli"

func main() {
	cli.Execute()
}
