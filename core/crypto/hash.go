package crypto

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
)

// DefaultHashMethod is used when no hash method is configured.
const DefaultHashMethod = "sha256"

// HashMethod describes one member of the hash capability family.
type HashMethod struct {
	Name string
	New  func() hash.Hash
}

var hashFamily = family[HashMethod]{
	name:        "hash",
	defaultName: DefaultHashMethod,
	methods: map[string]HashMethod{
		"sha1":      {Name: "sha1", New: sha1.New},
		"sha224":    {Name: "sha224", New: sha256.New224},
		"sha256":    {Name: "sha256", New: sha256.New},
		"sha384":    {Name: "sha384", New: sha512.New384},
		"sha512":    {Name: "sha512", New: sha512.New},
		"md4":       {Name: "md4", New: md4.New},
		"md5":       {Name: "md5", New: md5.New},
		"ripemd160": {Name: "ripemd160", New: ripemd160.New},
	},
}

// SelectHash resolves a configured hash method name. Unrecognized names
// fall back to DefaultHashMethod with a single warning.
func SelectHash(name string) (HashMethod, []string) {
	return hashFamily.selectMethod(name)
}

// Hasher computes digests with a selected hash method. When key material
// is present the digest is the keyed HMAC of the input; otherwise it is
// the plain hash.
type Hasher struct {
	method HashMethod
	key    []byte
}

// NewHasher builds a Hasher from a resolved method and optional key.
func NewHasher(method HashMethod, key []byte) *Hasher {
	return &Hasher{method: method, key: key}
}

// Method returns the resolved method name.
func (h *Hasher) Method() string {
	return h.method.Name
}

// Sum returns the digest of data.
func (h *Hasher) Sum(data []byte) []byte {
	if len(h.key) > 0 {
		mac := hmac.New(h.method.New, h.key)
		mac.Write(data)
		return mac.Sum(nil)
	}
	hsh := h.method.New()
	hsh.Write(data)
	return hsh.Sum(nil)
}

// Verify reports whether digest matches data in constant time.
func (h *Hasher) Verify(data, digest []byte) bool {
	return hmac.Equal(h.Sum(data), digest)
}
