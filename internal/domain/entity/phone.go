package entity

import (
	"fmt"
	"regexp"
	"strings"

	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
)

var msisdnPattern = regexp.MustCompile(`^254[0-9]{9}$`)

// NormalizePhone converts local and international Kenyan formats to 2547XXXXXXXX.
//
//	"0712 345 678"   -> "254712345678"
//	"+254712345678"  -> "254712345678"
//	"712345678"      -> "254712345678"
func NormalizePhone(phone string) (string, error) {
	p := strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	switch {
	case p == "":
		return "", fmt.Errorf("%w: empty value", errs.ErrInvalidPhone)
	case strings.HasPrefix(p, "+254"):
		p = p[1:]
	case strings.HasPrefix(p, "254"):
	case strings.HasPrefix(p, "0"):
		p = "254" + p[1:]
	default:
		p = "254" + p
	}

	if !msisdnPattern.MatchString(p) {
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidPhone, phone)
	}
	return p, nil
}
