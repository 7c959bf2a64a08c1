package encrypter

import "testing"

func TestEncrypterRoundTrip(t *testing.T) {
	enc, err := New("0123456789abcdef0123456789abcdef")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "secret", plaintext: "sk-test-key-123"},
		{name: "empty", plaintext: ""},
		{name: "unicode", plaintext: "análisis de clima"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, err := enc.Encrypt(tt.plaintext)
			if err != nil {
				t.Fatalf("Encrypt() error = %v", err)
			}
			if ct == tt.plaintext && tt.plaintext != "" {
				t.Fatal("Encrypt() returned plaintext unchanged")
			}

			got, err := enc.Decrypt(ct)
			if err != nil {
				t.Fatalf("Decrypt() error = %v", err)
			}
			if got != tt.plaintext {
				t.Errorf("Decrypt() = %q, want %q", got, tt.plaintext)
			}
		})
	}
}

func TestEncrypterNonceUniqueness(t *testing.T) {
	enc, err := New("0123456789abcdef")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	a, err := enc.Encrypt("same input")
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	b, err := enc.Encrypt("same input")
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if a == b {
		t.Error("two encryptions of the same input produced identical ciphertexts")
	}
}

func TestNewInvalidKey(t *testing.T) {
	if _, err := New("short"); err != ErrInvalidKeyLength {
		t.Errorf("New() error = %v, want %v", err, ErrInvalidKeyLength)
	}
}

func TestDecryptInvalidInput(t *testing.T) {
	enc, err := New("0123456789abcdef")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := enc.Decrypt("not-base64!!"); err == nil {
		t.Error("Decrypt() expected error for invalid base64")
	}
	if _, err := enc.Decrypt("YWJj"); err != ErrCiphertextTooShort {
		t.Errorf("Decrypt() error = %v, want %v", err, ErrCiphertextTooShort)
	}
}
