package main

import "github.com/KirkDiggler/duel-sim/cmd/simulate/cmd"

func main() {
	cmd.Execute()
}
