// Package crypto is the capability registry for the container's
// swappable crypto subsystems: a hash family (sha1, sha224, sha256,
// sha384, sha512, md4, md5, ripemd160) and a cipher family (chacha20,
// aes128, aes256).
//
// Selection is configuration-driven and deliberately forgiving: an
// unrecognized method name resolves to the family default with one
// warning, and key-material validation accumulates warnings without
// ever blocking construction. Availability wins over strictness here:
// a container with a bad cipher key still boots, and the warnings are
// the operator's signal to fix the key.
//
//	method, warns := crypto.SelectCipher(cfg.Method)
//	warns = append(warns, method.Validate(key, iv)...)
//	c := crypto.NewCipher(method, key, iv)
package crypto
