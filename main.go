package main

import "github.com/opensignage/xibo-agent/cmd"

func main() {
	cmd.Execute()
}
