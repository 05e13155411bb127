package util

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateRandomNumber generates a random number between min and max (inclusive)
func GenerateRandomNumber(min, max int) int {
	return min + rand.Intn(max-min+1)
}

// GenerateReceiptNumber builds a donation receipt number, e.g. "PW-20260831-4F2A9C1B"
func GenerateReceiptNumber() string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return fmt.Sprintf("PW-%s-%s", time.Now().Format("20060102"), short)
}
