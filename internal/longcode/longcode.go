// Package longcode extracts hash values embedded in cryptocurrency
// transaction longcodes.
package longcode

import (
	"regexp"
	"strings"
)

// The address hash follows a colon-space delimiter in the first segment, the
// blockchain hash follows one in the second.
var (
	addressPattern    = regexp.MustCompile(`:\s([0-9a-zA-Z]{26,29})`)
	blockchainPattern = regexp.MustCompile(`:\s([0-9a-zA-Z]{26,35})`)
)

// Details holds the values extracted from a transaction longcode. A hash
// field is empty when its segment contained no match.
type Details struct {
	AddressHash    string   `json:"address_hash,omitempty"`
	BlockchainHash string   `json:"blockchain_hash,omitempty"`
	SplitLongcode  []string `json:"split_longcode"`
}

// Parse splits a longcode on comma-space and extracts the address and
// blockchain hashes from the first two segments. A missing hash is not an
// error; the field is simply left empty.
func Parse(longcode string) Details {
	segments := strings.Split(longcode, ", ")
	details := Details{SplitLongcode: segments}

	if m := addressPattern.FindStringSubmatch(segments[0]); m != nil {
		details.AddressHash = m[1]
	}
	if len(segments) > 1 {
		if m := blockchainPattern.FindStringSubmatch(segments[1]); m != nil {
			details.BlockchainHash = m[1]
		}
	}
	return details
}
