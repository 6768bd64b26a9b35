package main

import "seller-sync/cmd"

func main() {
	cmd.Execute()
}
