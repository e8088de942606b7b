package transaction

import (
	"crypto/rand"
	"math/big"
)

const (
	receiptPrefix   = "PGH"
	receiptLength   = 7
	receiptAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// GenerateReceipt returns a synthetic receipt such as PGH4K9Z0QA for completions
// that arrive without a gateway receipt (status polls).
func GenerateReceipt() string {
	buf := make([]byte, receiptLength)
	max := big.NewInt(int64(len(receiptAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand does not fail on supported platforms
			panic(err)
		}
		buf[i] = receiptAlphabet[n.Int64()]
	}
	return receiptPrefix + string(buf)
}
