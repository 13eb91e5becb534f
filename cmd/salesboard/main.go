package main

import "github.com/viglianco/go-sales-ledger/cmd/salesboard/cmd"

func main() {
	cmd.Execute()
}
