package main

import "github.com/viglianco/go-sales-ledger/cmd/worker/cmd"

func main() {
	cmd.Execute()
}
