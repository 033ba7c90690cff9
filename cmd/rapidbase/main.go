package main

import "github.com/mnightingale/rapidbase/cmd/rapidbase/cmd"

func main() {
	cmd.Execute()
}
