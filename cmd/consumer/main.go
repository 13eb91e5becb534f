package main

import "github.com/viglianco/go-sales-ledger/cmd/consumer/cmd"

func main() {
	cmd.Execute()
}
