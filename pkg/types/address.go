package types

import (
	"encoding/json"
	"fmt"

	"github.com/mr-tron/base58"
)

// AddressSize is the length of a decoded wallet address (an Ed25519 public key).
const AddressSize = 32

// Bounds on the base-58 text form of an address.
const (
	MinAddressLength = 32
	MaxAddressLength = 44
)

// Address is a 32-byte wallet or mint public key.
type Address [AddressSize]byte

// AddressError describes why a string is not a well-formed address.
type AddressError struct {
	Issue string
}

func (e *AddressError) Error() string {
	return "invalid address: " + e.Issue
}

// ParseAddress decodes a base-58 address string. It performs no network
// lookup: a parsed address is well-formed, not necessarily funded or existing.
func ParseAddress(s string) (Address, error) {
	raw, issue := decodeAddress(s)
	if issue != "" {
		return Address{}, &AddressError{Issue: issue}
	}
	var a Address
	copy(a[:], raw)
	return a, nil
}

// ValidateAddress checks s for plausible well-formedness. The checks run in
// order (empty, length, base-58, decoded size) and stop at the first failure,
// so an invalid address always carries exactly one issue.
func ValidateAddress(s string) (bool, []string) {
	if _, issue := decodeAddress(s); issue != "" {
		return false, []string{issue}
	}
	return true, []string{}
}

func decodeAddress(s string) ([]byte, string) {
	if s == "" {
		return nil, "address is empty"
	}
	if len(s) < MinAddressLength || len(s) > MaxAddressLength {
		return nil, fmt.Sprintf("invalid address length: %d (expected %d-%d)",
			len(s), MinAddressLength, MaxAddressLength)
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Sprintf("invalid base58 encoding: %v", err)
	}
	if len(raw) != AddressSize {
		return nil, fmt.Sprintf("decoded address is not %d bytes: %d", AddressSize, len(raw))
	}
	return raw, ""
}

// IsZero returns true if the address is all zeros.
func (a Address) IsZero() bool {
	return a == Address{}
}

// String returns the base-58 form of the address.
func (a Address) String() string {
	return base58.Encode(a[:])
}

// Bytes returns a copy of the address as a byte slice.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressSize)
	copy(b, a[:])
	return b
}

// MarshalJSON encodes the address as a base-58 string.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes a base-58 string into an address.
func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
