package main

import "github.com/frahmantamala/hrm/cmd"

func main() {
	cmd.Execute()
}
