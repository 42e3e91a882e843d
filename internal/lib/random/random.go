package random

import (
	"fmt"
	"math/rand"
)

// NewOTP returns a 6-digit one-time code in [100000, 999999].
func NewOTP() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}
