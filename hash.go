package enum

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a hex-encoded BLAKE2b-256 digest of the declaration.
//
// Two descriptors have the same fingerprint exactly when they declare the same
// name, flag settings and members (name, raw value, display text) in the same
// order. Processes that persist raw values can compare fingerprints to detect
// a declaration that changed underneath them.
func (d Descriptor[V]) Fingerprint() string {
	buf := make([]byte, 0, 64+32*len(d.Members))
	buf = appendString(buf, d.Name)
	if d.Flags {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = appendString(buf, d.Separator)
	buf = binary.AppendUvarint(buf, uint64(len(d.Members)))
	for _, m := range d.Members {
		buf = appendString(buf, m.Name)
		buf = binary.BigEndian.AppendUint64(buf, uint64(m.Value))
		buf = appendString(buf, m.Display)
	}

	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

// Fingerprint is shorthand for t.Describe().Fingerprint().
func (t *Type[V]) Fingerprint() string {
	return t.Describe().Fingerprint()
}

// appendString writes a length-prefixed string.
func appendString(buf []byte, s string) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}
