package main

import "github.com/dalythu/REST-API/cmd"

func main() {
	cmd.Execute()
}
