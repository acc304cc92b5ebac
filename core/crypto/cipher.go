package crypto

import (
	"crypto/aes"
	stdcipher "crypto/cipher"
	"fmt"
	"slices"

	"golang.org/x/crypto/chacha20"
)

// DefaultCipherMethod is used when no cipher method is configured.
const DefaultCipherMethod = "chacha20"

// CipherMethod describes one member of the cipher capability family,
// including the key material shape it expects.
type CipherMethod struct {
	Name       string
	KeySizes   []int
	IVSize     int
	IVRequired bool
}

var cipherFamily = family[CipherMethod]{
	name:        "cipher",
	defaultName: DefaultCipherMethod,
	methods: map[string]CipherMethod{
		"chacha20": {Name: "chacha20", KeySizes: []int{chacha20.KeySize}, IVSize: chacha20.NonceSize, IVRequired: true},
		"aes128":   {Name: "aes128", KeySizes: []int{16}, IVSize: aes.BlockSize},
		"aes256":   {Name: "aes256", KeySizes: []int{16, 32}, IVSize: aes.BlockSize},
	},
}

// SelectCipher resolves a configured cipher method name. Unrecognized
// names fall back to DefaultCipherMethod with a single warning.
func SelectCipher(name string) (CipherMethod, []string) {
	return cipherFamily.selectMethod(name)
}

// Validate checks key material against the method's declared shape. It
// returns warnings rather than errors: invalid material is reported but
// the subsystem is still constructed, shifting responsibility to the
// operator.
func (m CipherMethod) Validate(key, iv []byte) []string {
	var warnings []string
	if len(key) > 0 && !slices.Contains(m.KeySizes, len(key)) {
		warnings = append(warnings, fmt.Sprintf(
			"%s key must be %s bytes, got %d", m.Name, sizeList(m.KeySizes), len(key)))
	}
	switch {
	case len(iv) == 0 && m.IVRequired:
		warnings = append(warnings, fmt.Sprintf("%s requires a %d-byte iv, none set", m.Name, m.IVSize))
	case len(iv) > 0 && len(iv) != m.IVSize:
		warnings = append(warnings, fmt.Sprintf("%s iv must be %d bytes, got %d", m.Name, m.IVSize, len(iv)))
	}
	return warnings
}

func sizeList(sizes []int) string {
	out := ""
	for i, s := range sizes {
		if i > 0 {
			out += " or "
		}
		out += fmt.Sprint(s)
	}
	return out
}

// Cipher encrypts and decrypts with a selected method. Construction
// never fails: missing or mis-sized material is normalized (zero-filled
// or truncated) so that a misconfigured container still starts. The
// registry reports the material problems as warnings at assembly time.
type Cipher struct {
	method CipherMethod
	key    []byte
	iv     []byte
}

// NewCipher builds a Cipher from a resolved method and raw key material.
func NewCipher(method CipherMethod, key, iv []byte) *Cipher {
	return &Cipher{
		method: method,
		key:    fitKey(method, key),
		iv:     fit(iv, method.IVSize),
	}
}

// Method returns the resolved method name.
func (c *Cipher) Method() string {
	return c.method.Name
}

// Encrypt returns the ciphertext of plaintext.
func (c *Cipher) Encrypt(plaintext []byte) ([]byte, error) {
	stream, err := c.stream()
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(plaintext))
	stream.XORKeyStream(out, plaintext)
	return out, nil
}

// Decrypt returns the plaintext of ciphertext.
func (c *Cipher) Decrypt(ciphertext []byte) ([]byte, error) {
	// Stream ciphers are symmetric.
	return c.Encrypt(ciphertext)
}

func (c *Cipher) stream() (stdcipher.Stream, error) {
	switch c.method.Name {
	case "chacha20":
		return chacha20.NewUnauthenticatedCipher(c.key, c.iv)
	default:
		block, err := aes.NewCipher(c.key)
		if err != nil {
			return nil, err
		}
		return stdcipher.NewCTR(block, c.iv), nil
	}
}

// fitKey normalizes key material to a size the method accepts: exact
// matches pass through, anything else is zero-padded or truncated to the
// nearest declared size.
func fitKey(method CipherMethod, key []byte) []byte {
	if slices.Contains(method.KeySizes, len(key)) {
		return slices.Clone(key)
	}
	target := method.KeySizes[0]
	for _, s := range method.KeySizes {
		if len(key) >= s {
			target = s
		}
	}
	return fit(key, target)
}

func fit(b []byte, size int) []byte {
	out := make([]byte, size)
	copy(out, b)
	return out
}
