package main

import "github.com/casegen-dev/casegen/cmd"

func main() {
	cmd.Execute()
}
