// Package wppass verifies passwords against the hash formats found in the
// legacy WordPress user table: portable PHPass hashes ($P$ / $H$) and, for
// transitional rows that predate PHPass, plain unsalted MD5 hex digests.
package wppass

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

const itoa64 = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const portableHashLen = 34

// CheckPassword reports whether password matches storedHash. The format is
// detected structurally from the stored value; anything unrecognized or
// malformed yields false, never a panic. Comparisons go through
// subtle.ConstantTimeCompare so a mismatch costs the same as a match.
func CheckPassword(password, storedHash string) bool {
	switch {
	case len(storedHash) == portableHashLen &&
		(strings.HasPrefix(storedHash, "$P$") || strings.HasPrefix(storedHash, "$H$")):
		return checkPortable(password, storedHash)
	case len(storedHash) == 32 && isHex(storedHash):
		sum := md5.Sum([]byte(password))
		digest := hex.EncodeToString(sum[:])
		return subtle.ConstantTimeCompare([]byte(digest), []byte(strings.ToLower(storedHash))) == 1
	default:
		return false
	}
}

// checkPortable recomputes a PHPass portable hash from the setting prefix
// (3-byte magic, iteration-count character, 8-byte salt) and compares the
// full encoded string.
func checkPortable(password, storedHash string) bool {
	countLog2 := strings.IndexByte(itoa64, storedHash[3])
	if countLog2 < 7 || countLog2 > 30 {
		return false
	}
	count := 1 << uint(countLog2)
	salt := storedHash[4:12]

	sum := md5.Sum([]byte(salt + password))
	for i := 0; i < count; i++ {
		sum = md5.Sum(append(sum[:], password...))
	}

	computed := storedHash[:12] + encode64(sum[:], md5.Size)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}

// HashPortable produces a PHPass portable hash for the given salt (exactly 8
// characters) and iteration exponent. Used by migration fixtures and tests;
// the service itself only verifies.
func HashPortable(password, salt string, countLog2 int) string {
	if len(salt) != 8 || countLog2 < 7 || countLog2 > 30 {
		return ""
	}
	setting := "$P$" + string(itoa64[countLog2]) + salt
	count := 1 << uint(countLog2)

	sum := md5.Sum([]byte(salt + password))
	for i := 0; i < count; i++ {
		sum = md5.Sum(append(sum[:], password...))
	}
	return setting + encode64(sum[:], md5.Size)
}

// encode64 is PHPass's base64 variant: little-endian 6-bit groups over the
// "./0-9A-Za-z" alphabet, no padding.
func encode64(input []byte, count int) string {
	out := make([]byte, 0, (count*4+2)/3)
	i := 0
	for i < count {
		value := int(input[i])
		i++
		out = append(out, itoa64[value&0x3f])
		if i < count {
			value |= int(input[i]) << 8
		}
		out = append(out, itoa64[(value>>6)&0x3f])
		if i >= count {
			break
		}
		i++
		if i < count {
			value |= int(input[i]) << 16
		}
		out = append(out, itoa64[(value>>12)&0x3f])
		if i >= count {
			break
		}
		i++
		out = append(out, itoa64[(value>>18)&0x3f])
	}
	return string(out)
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
