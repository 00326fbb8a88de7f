package main

import "github.com/rafiki270/XCUIDebug/cmd"

func main() {
	cmd.Execute()
}
