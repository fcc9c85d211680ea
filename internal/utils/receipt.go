package utils

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const receiptSuffixLen = 4

// GenerateReceiptNumber produces a human-quotable receipt reference:
// an "HL-" prefix, the current unix millisecond timestamp in base36
// and a random 4-character suffix. Collisions are improbable rather
// than impossible; receipts are never regenerated so a duplicate
// would surface as a unique-constraint failure on insert.
func GenerateReceiptNumber(now time.Time) string {
	var sb strings.Builder
	sb.WriteString("HL-")
	sb.WriteString(strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)))
	sb.WriteByte('-')

	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for i := 0; i < receiptSuffixLen; i++ {
		sb.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return sb.String()
}
