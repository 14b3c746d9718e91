package ticket

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrNumberExhausted is returned when the bounded collision-probe loop
// runs out of attempts. Ticket creation must abort on this error.
var ErrNumberExhausted = errors.New("ticket number space exhausted for current month")

// MaxNumberAttempts bounds the uniqueness-probe retry loop.
const MaxNumberAttempts = 100

// numberPattern matches identifiers of the form TKT-YYYYMM-NNNNN.
var numberPattern = regexp.MustCompile(`^TKT-(\d{6})-(\d{5})$`)

// NumberGenerator produces the next human-readable ticket identifier for
// the current calendar month. Implementations must serialize generation
// so that numbers within one month stay unique and monotonic.
type NumberGenerator interface {
	Generate(ctx context.Context, now time.Time) (string, error)
}

// FormatNumber builds a ticket identifier from a month bucket and counter.
func FormatNumber(now time.Time, counter int) string {
	return fmt.Sprintf("TKT-%s-%05d", now.Format("200601"), counter)
}

// MonthPrefix returns the LIKE-compatible identifier prefix for a month.
func MonthPrefix(now time.Time) string {
	return fmt.Sprintf("TKT-%s-", now.Format("200601"))
}

// ParseNumberCounter extracts the numeric suffix from a ticket identifier.
func ParseNumberCounter(number string) (int, error) {
	m := numberPattern.FindStringSubmatch(number)
	if m == nil {
		return 0, fmt.Errorf("malformed ticket number: %s", number)
	}
	counter, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, fmt.Errorf("malformed ticket counter: %s", number)
	}
	return counter, nil
}

// IsValidNumber reports whether the identifier matches TKT-YYYYMM-NNNNN.
func IsValidNumber(number string) bool {
	return numberPattern.MatchString(number)
}
