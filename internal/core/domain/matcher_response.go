package domain

import (
	"fmt"
	"strings"
	"time"
)

// MatcherResponse is the plaintext the Matcher returns for one exchange.
type MatcherResponse struct {
	ReplayDate *time.Time
	Addresses  []Address
}

// NewMatcherResponse builds a response with a sorted, duplicate-free address set.
func NewMatcherResponse(replayDate *time.Time, addresses []Address) *MatcherResponse {
	resp := &MatcherResponse{Addresses: SortedUnique(addresses)}
	if replayDate != nil {
		t := time.UnixMilli(replayDate.UnixMilli()).UTC()
		resp.ReplayDate = &t
	}
	return resp
}

// Serialize renders the response in its deterministic line format:
//
//	version
//	replay date (unix millis, or -1)
//	one address per line, ascending
func (r *MatcherResponse) Serialize() []byte {
	addresses := SortedUnique(r.Addresses)
	lines := make([]string, 0, 2+len(addresses))
	lines = append(lines, WireVersion, formatOptionalMillis(r.ReplayDate))
	for _, a := range addresses {
		lines = append(lines, string(a))
	}
	return []byte(strings.Join(lines, "\n"))
}

// ParseMatcherResponse is the inverse of Serialize.
func ParseMatcherResponse(plaintext []byte) (*MatcherResponse, error) {
	lines := strings.Split(string(plaintext), "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: matcher response has %d lines, want at least 2", ErrMalformed, len(lines))
	}
	if lines[0] != WireVersion {
		return nil, fmt.Errorf("%w: unsupported matcher response version %q", ErrMalformed, lines[0])
	}

	replay, err := parseOptionalMillis("replay date", lines[1])
	if err != nil {
		return nil, err
	}

	addresses := make([]Address, 0, len(lines)-2)
	for _, l := range lines[2:] {
		if l == "" {
			return nil, fmt.Errorf("%w: empty address line", ErrMalformed)
		}
		addresses = append(addresses, Address(l))
	}
	for i := 1; i < len(addresses); i++ {
		if addresses[i-1] >= addresses[i] {
			return nil, fmt.Errorf("%w: addresses are not strictly ascending", ErrMalformed)
		}
	}

	return &MatcherResponse{ReplayDate: replay, Addresses: addresses}, nil
}
