// Package identifier generates the identifiers writers assign to rows. The
// store never assigns keys itself.
package identifier

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	gosimple "github.com/gosimple/slug"
)

var counter uint32

func init() {
	var seed [4]byte
	if _, err := rand.Read(seed[:]); err == nil {
		counter = binary.BigEndian.Uint32(seed[:])
	}
}

// New returns a 24-character lower-hex identifier: a 4-byte unix timestamp,
// 5 random bytes and a 3-byte rolling counter, so ids sort roughly by
// creation time.
func New() string {
	var b [12]byte
	binary.BigEndian.PutUint32(b[0:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(b[4:9]); err != nil {
		binary.BigEndian.PutUint64(b[1:9], uint64(time.Now().UnixNano()))
	}
	n := atomic.AddUint32(&counter, 1)
	b[9] = byte(n >> 16)
	b[10] = byte(n >> 8)
	b[11] = byte(n)
	return hex.EncodeToString(b[:])
}

// UUID returns a random UUID string for the uuid columns carried by posts,
// members and emails.
func UUID() string {
	return uuid.NewString()
}

// Slug derives a URL-safe slug from a human-readable name.
func Slug(name string) string {
	return gosimple.Make(name)
}
