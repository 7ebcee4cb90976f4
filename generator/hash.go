package generator

import (
	"encoding/binary"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash returns a highway hash of data
func Hash(data []byte) uint64 {
	hash, err := highwayhash.New64(key)
	if err != nil { // key is always 32 bytes
		panic(err)
	}
	_, _ = hash.Write(data)
	return hash.Sum64()
}

// appendField appends a length prefixed field, so that ("ab","c") and ("a","bc") encode differently
func appendField(dest []byte, value string) []byte {
	dest = binary.AppendUvarint(dest, uint64(len(value)))
	return append(dest, value...)
}
