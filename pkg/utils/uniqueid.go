package utils

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

const alnum = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomAlnum returns n random characters drawn from A-Z0-9.
func RandomAlnum(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return strings.Repeat("X", n)
	}
	for i, b := range bytes {
		bytes[i] = alnum[int(b)%len(alnum)]
	}
	return string(bytes)
}

// timestampSuffix is the last six digits of the current unix time, zero padded.
func timestampSuffix() string {
	return fmt.Sprintf("%06d", time.Now().Unix()%1000000)
}

// CaptainUniqueID builds the shareable captain identifier:
// APX-<last 4 of roll number>-<3 random alnum><6 digit timestamp>.
func CaptainUniqueID(rNumber string) string {
	tail := strings.ToUpper(rNumber)
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return fmt.Sprintf("APX-%s-%s%s", tail, RandomAlnum(3), timestampSuffix())
}

// PlayerUniqueID builds the roster entry identifier, seeded from the first
// name of the captain who registered the player:
// PLY-<captain first name, lowercased>-<3 random alnum><6 digit timestamp>.
func PlayerUniqueID(captainName string) string {
	first := "captain"
	if fields := strings.Fields(captainName); len(fields) > 0 {
		first = strings.ToLower(fields[0])
	}
	return fmt.Sprintf("PLY-%s-%s%s", first, RandomAlnum(3), timestampSuffix())
}
