package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	aes256 "github.com/hiae-aead/go-aes256"
)

func TestRunRoundTrip(t *testing.T) {
	dir := t.TempDir()
	keyFile := filepath.Join(dir, "key")
	plain := filepath.Join(dir, "plain.txt")
	hexOut := filepath.Join(dir, "cipher.hex")
	back := filepath.Join(dir, "back.txt")

	if err := os.WriteFile(keyFile, []byte("01234567890123456789012345678901\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(plain, []byte("A"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := run(false, "", keyFile, plain, hexOut); err != nil {
		t.Fatal(err)
	}
	ct, err := os.ReadFile(hexOut)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(ct), "fd28661d5091eeac6d34d7c1f949c3e2\n"; got != want {
		t.Errorf("ciphertext = %q, want = %q", got, want)
	}

	if err := run(true, "", keyFile, hexOut, back); err != nil {
		t.Fatal(err)
	}
	pt, err := os.ReadFile(back)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(pt), "A"; got != want {
		t.Errorf("plaintext = %q, want = %q", got, want)
	}
}

func TestRunBadKey(t *testing.T) {
	plain := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(plain, []byte("A"), 0600); err != nil {
		t.Fatal(err)
	}

	err := run(false, "too short", "", plain, filepath.Join(t.TempDir(), "out"))
	if !errors.Is(err, aes256.ErrInvalidKeyLength) {
		t.Errorf("run err = %v, want = ErrInvalidKeyLength", err)
	}
}
