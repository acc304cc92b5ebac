// Package config provides type-safe environment variable loading with
// per-type caching. Each configuration struct type is parsed once per
// process and every later Load returns the cached value, so two
// components asking for the same type always observe identical settings.
//
// A .env file in the working directory is applied once before the first
// parse. Variables already present in the environment win over .env
// entries, and later sources never overwrite earlier ones implicitly.
//
//	type CipherConfig struct {
//		Method string `env:"CIPHER_METHOD" envDefault:"chacha20"`
//		Key    string `env:"CIPHER_KEY"`
//	}
//
//	var cfg CipherConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Missing required keys surface as MissingKeyError values carrying the
// key path and the requesting type.
package config
