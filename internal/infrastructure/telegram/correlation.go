package telegram

import (
	"fmt"
	"regexp"
)

// TagLine is appended to every operator notification so replies can be
// matched back to the order.
func TagLine(orderID string) string {
	return fmt.Sprintf("🆔 Track: %s", orderID)
}

var orderTagPatterns = []*regexp.Regexp{
	regexp.MustCompile(`🆔 Track: ([A-Za-z0-9]{8})\b`),
	regexp.MustCompile(`Order ID: ([A-Za-z0-9]{8})\b`),
}

// ExtractOrderID returns the order id tagged in text using either accepted format.
func ExtractOrderID(text string) (string, bool) {
	for _, re := range orderTagPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}
