package main

import "github.com/menulytics/menulytics/cmd"

func main() {
	cmd.Execute()
}
