package main

import "ledger-audit/cmd"

func main() {
	cmd.Execute()
}
