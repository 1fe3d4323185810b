package main

import "nathanbeddoewebdev/svrmgr/cmd"

func main() {
	cmd.Execute()
}
