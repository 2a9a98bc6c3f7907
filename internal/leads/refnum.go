package leads

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// refAlphabet drops 0/O/1/I/L so reference numbers survive being read out
// over the phone.
const refAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const refSuffixLen = 6

// NewReferenceNumber returns a customer-facing reference such as
// "TV-20260830-K7M2XQ". The suffix comes from crypto/rand; bytes that would
// bias the modulo are rejected so every alphabet character is equally likely.
func NewReferenceNumber(now time.Time) (string, error) {
	limit := byte(256 - 256%len(refAlphabet))
	suffix := make([]byte, 0, refSuffixLen)
	buf := make([]byte, 2*refSuffixLen)
	for len(suffix) < refSuffixLen {
		if _, err := rand.Read(buf); err != nil {
			return "", errors.Wrap(err, "reference number entropy")
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			suffix = append(suffix, refAlphabet[int(b)%len(refAlphabet)])
			if len(suffix) == refSuffixLen {
				break
			}
		}
	}
	return fmt.Sprintf("TV-%s-%s", now.Format("20060102"), string(suffix)), nil
}
