// Command aes256 encrypts text to hex, or decrypts hex to text, with AES-256 in ECB
// mode.
//
//	aes256 -key-file key.txt < message.txt > message.hex
//	aes256 -d -key-file key.txt < message.hex
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	aes256 "github.com/hiae-aead/go-aes256"
	"github.com/hiae-aead/go-aes256/internal/config"
)

func main() {
	var (
		decrypt = flag.Bool("d", false, "decrypt hex input instead of encrypting")
		key     = flag.String("key", "", "the 32-byte key")
		keyFile = flag.String("key-file", "", "read the key from this file")
		in      = flag.String("in", "", "input file (default stdin)")
		out     = flag.String("out", "", "output file (default stdout)")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(*decrypt, *key, *keyFile, *in, *out); err != nil {
		log.Error("aes256 failed", "err", err)
		os.Exit(1)
	}
}

func run(decrypt bool, key, keyFile, in, out string) error {
	if keyFile != "" {
		k, err := config.ReadKey(keyFile)
		if err != nil {
			return err
		}
		key = k
	}

	input, err := readInput(in)
	if err != nil {
		return err
	}

	var result string
	if decrypt {
		result, err = aes256.Decrypt(strings.TrimSpace(input), key)
	} else {
		result, err = aes256.Encrypt(input, key)
	}
	if err != nil {
		return err
	}
	if !decrypt {
		result += "\n"
	}

	if out == "" {
		_, err = io.WriteString(os.Stdout, result)
		return err
	}
	return os.WriteFile(out, []byte(result), 0600)
}

func readInput(path string) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}
