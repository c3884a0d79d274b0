package main

import "github.com/vietddude/touradmin/internal/cli"

func main() {
	cli.Execute()
}
