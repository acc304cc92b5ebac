package crypto_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/appkit/core/crypto"
)

func TestSelectCipherDefault(t *testing.T) {
	t.Parallel()

	method, warnings := crypto.SelectCipher("")
	assert.Equal(t, crypto.DefaultCipherMethod, method.Name)
	assert.Empty(t, warnings)
}

func TestSelectCipherUnrecognized(t *testing.T) {
	t.Parallel()

	method, warnings := crypto.SelectCipher("des")
	assert.Equal(t, crypto.DefaultCipherMethod, method.Name)
	require.Len(t, warnings, 1, "exactly one warning")
	assert.Contains(t, warnings[0], "des")
	assert.Contains(t, warnings[0], "cipher")
}

func TestCipherMethodValidate(t *testing.T) {
	t.Parallel()

	t.Run("aes256 accepts 16-byte key", func(t *testing.T) {
		t.Parallel()
		method, _ := crypto.SelectCipher("aes256")
		warnings := method.Validate(bytes.Repeat([]byte("k"), 16), nil)
		assert.Empty(t, warnings)
	})

	t.Run("aes256 accepts 32-byte key", func(t *testing.T) {
		t.Parallel()
		method, _ := crypto.SelectCipher("aes256")
		warnings := method.Validate(bytes.Repeat([]byte("k"), 32), nil)
		assert.Empty(t, warnings)
	})

	t.Run("aes256 warns once on 10-byte key", func(t *testing.T) {
		t.Parallel()
		method, _ := crypto.SelectCipher("aes256")
		warnings := method.Validate(bytes.Repeat([]byte("k"), 10), nil)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "key")
	})

	t.Run("chacha20 requires an iv", func(t *testing.T) {
		t.Parallel()
		method, _ := crypto.SelectCipher("chacha20")
		warnings := method.Validate(bytes.Repeat([]byte("k"), 32), nil)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "iv")
	})

	t.Run("mis-sized iv warns", func(t *testing.T) {
		t.Parallel()
		method, _ := crypto.SelectCipher("aes128")
		warnings := method.Validate(bytes.Repeat([]byte("k"), 16), []byte("short-iv"))
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "iv")
	})
}

func TestCipherConstructsDespiteInvalidMaterial(t *testing.T) {
	t.Parallel()

	method, _ := crypto.SelectCipher("aes256")
	c := crypto.NewCipher(method, bytes.Repeat([]byte("k"), 10), nil)
	require.NotNil(t, c, "invalid material still constructs")

	ciphertext, err := c.Encrypt([]byte("still works"))
	require.NoError(t, err)
	plaintext, err := c.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, []byte("still works"), plaintext)
}

func TestCipherRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		method string
		keyLen int
		ivLen  int
	}{
		{"chacha20", 32, 12},
		{"aes128", 16, 16},
		{"aes256", 32, 16},
		{"aes256", 16, 16},
	}

	for _, tc := range cases {
		method, warnings := crypto.SelectCipher(tc.method)
		require.Empty(t, warnings)

		key := bytes.Repeat([]byte("k"), tc.keyLen)
		iv := bytes.Repeat([]byte("v"), tc.ivLen)
		require.Empty(t, method.Validate(key, iv))

		c := crypto.NewCipher(method, key, iv)
		ciphertext, err := c.Encrypt([]byte("attack at dawn"))
		require.NoError(t, err)
		assert.NotEqual(t, []byte("attack at dawn"), ciphertext)

		plaintext, err := c.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, []byte("attack at dawn"), plaintext, tc.method)
	}
}

func TestCipherZeroKeyFallback(t *testing.T) {
	t.Parallel()

	method, _ := crypto.SelectCipher("chacha20")
	c := crypto.NewCipher(method, nil, nil)

	ciphertext, err := c.Encrypt([]byte("payload"))
	require.NoError(t, err, "missing material is normalized, not fatal")

	plaintext, err := c.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), plaintext)
}

func TestMethodNames(t *testing.T) {
	t.Parallel()

	assert.ElementsMatch(t,
		[]string{"sha1", "sha224", "sha256", "sha384", "sha512", "md4", "md5", "ripemd160"},
		crypto.HashMethodNames())
	assert.ElementsMatch(t, []string{"chacha20", "aes128", "aes256"}, crypto.CipherMethodNames())
}
