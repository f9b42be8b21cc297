// Command genkey writes a random 32-character key usable with aes256 and aes256d.
package main

import (
	"crypto/rand"
	"log/slog"
	"os"

	aes256 "github.com/hiae-aead/go-aes256"
)

// alphabet has 32 symbols, so b&31 picks one uniformly.
const alphabet = "abcdefghijklmnopqrstuvwxyz234567"

func main() {
	if len(os.Args) != 2 {
		slog.Error("usage: genkey <path>")
		os.Exit(2)
	}

	key := make([]byte, aes256.KeyLen)
	if _, err := rand.Read(key); err != nil {
		slog.Error("failed to read random bytes", "err", err)
		os.Exit(1)
	}
	for i, b := range key {
		key[i] = alphabet[b&31]
	}

	if err := os.WriteFile(os.Args[1], append(key, '\n'), 0600); err != nil {
		slog.Error("failed to write key", "err", err)
		os.Exit(1)
	}
	slog.Info("wrote key", "path", os.Args[1])
}
