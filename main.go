package main

import "github.com/vivianokoye/nutristat/cmd"

func main() {
	cmd.Execute()
}
