package domain

import (
	"encoding/binary"
	"io/fs"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint is a cheap identity token for a file's content, derived from
// size and modification time rather than a full content hash. Two equal
// fingerprints mean the cache entry built from that file is still usable;
// freshness is otherwise guaranteed by watcher-driven invalidation, never by
// re-checking at read time.
type Fingerprint uint64

// FingerprintOf computes the fingerprint for a file's stat info.
func FingerprintOf(info fs.FileInfo) Fingerprint {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(info.Size()))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(info.ModTime().UnixNano()))

	d := xxhash.New()
	_, _ = d.WriteString(info.Name())
	_, _ = d.Write(buf[:])
	return Fingerprint(d.Sum64())
}
