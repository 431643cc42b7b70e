// gen_recipients.go writes a recipient CSV with random wallet addresses,
// for exercising a local multisendd.
// Usage: go run scripts/gen_recipients.go <count> [amount] > recipients.csv
package main

import (
	"crypto/rand"
	"fmt"
	"os"
	"strconv"

	"github.com/mr-tron/base58"
	"github.com/shopspring/decimal"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_recipients <count> [amount]")
		os.Exit(1)
	}
	count, err := strconv.Atoi(os.Args[1])
	if err != nil || count < 1 {
		fmt.Fprintf(os.Stderr, "invalid count %q\n", os.Args[1])
		os.Exit(1)
	}
	amount := decimal.NewFromFloat(0.001)
	if len(os.Args) > 2 {
		if amount, err = decimal.NewFromString(os.Args[2]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fmt.Println("wallet_address,amount")
	var key [32]byte
	for i := 0; i < count; i++ {
		if _, err := rand.Read(key[:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("%s,%s\n", base58.Encode(key[:]), amount)
	}
}
