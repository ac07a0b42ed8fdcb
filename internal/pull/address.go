package pull

import (
	"fmt"
	"strings"

	"github.com/uenv-tools/uenvpull/internal/messages"
)

// ParseAddress splits a tag-qualified image address on its last colon. The
// last colon matters because the registry host may carry a port. Addresses
// without a tag are invalid input and rejected before any subprocess runs.
func ParseAddress(address string) (base string, tag string, err error) {
	idx := strings.LastIndex(address, ":")
	if idx <= 0 || idx == len(address)-1 {
		return "", "", fmt.Errorf(messages.PullInvalidAddressFmt, address)
	}
	return address[:idx], address[idx+1:], nil
}

// QualifyAddress prepends the configured registry prefix to bare image
// names. Addresses that already carry a registry path are returned as is.
func QualifyAddress(address string, prefix string) string {
	if prefix == "" || strings.Contains(address, "/") {
		return address
	}
	return prefix + "/" + address
}
