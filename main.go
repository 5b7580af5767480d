package main

import "github.com/vibast-solutions/ms-go-intent/cmd"

func main() {
	cmd.Execute()
}
