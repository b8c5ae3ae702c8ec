package auth_test

import (
	"strings"
	"testing"

	"github.com/shashiranjanraj/vanik/pkg/auth"
)

func TestActivationTokenRoundTrip(t *testing.T) {
	state := auth.Fingerprint("7", "asha@example.com", "hash", "false")

	token, err := auth.ActivationToken(7, state)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if err := auth.CheckActivationToken(token, 7, state); err != nil {
		t.Errorf("expected the freshly issued token to verify, got %v", err)
	}
}

func TestActivationTokenWrongUser(t *testing.T) {
	state := auth.Fingerprint("7", "asha@example.com", "hash", "false")

	token, err := auth.ActivationToken(7, state)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if err := auth.CheckActivationToken(token, 8, state); err == nil {
		t.Error("a token issued for user 7 must not verify for user 8")
	}
}

func TestActivationTokenStateBound(t *testing.T) {
	before := auth.Fingerprint("7", "asha@example.com", "hash", "false")

	token, err := auth.ActivationToken(7, before)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	// Changing any fingerprinted field (here: the active flag, as
	// activation itself does) must kill the outstanding token.
	after := auth.Fingerprint("7", "asha@example.com", "hash", "true")
	if err := auth.CheckActivationToken(token, 7, after); err == nil {
		t.Error("a token issued before a state change must not verify after it")
	}
}

func TestActivationTokenTampered(t *testing.T) {
	state := auth.Fingerprint("7", "asha@example.com", "hash", "false")

	token, err := auth.ActivationToken(7, state)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if err := auth.CheckActivationToken(tampered, 7, state); err == nil {
		t.Error("a tampered token must not verify")
	}
}

func TestActivationTokenGarbage(t *testing.T) {
	state := auth.Fingerprint("7", "asha@example.com", "hash", "false")

	for _, token := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		if err := auth.CheckActivationToken(token, 7, state); err == nil {
			t.Errorf("garbage token %q must not verify", token)
		}
	}
}

func TestFingerprintChangesWithInput(t *testing.T) {
	a := auth.Fingerprint("7", "asha@example.com", "hash", "false")
	b := auth.Fingerprint("7", "asha@example.com", "other-hash", "false")
	if a == b {
		t.Error("different inputs must produce different fingerprints")
	}

	if a != auth.Fingerprint("7", "asha@example.com", "hash", "false") {
		t.Error("the fingerprint must be stable for identical input")
	}
}

func TestUIDCodec(t *testing.T) {
	for _, id := range []uint{1, 7, 42, 123456} {
		encoded := auth.EncodeUID(id)
		if strings.ContainsAny(encoded, "+/=") {
			t.Errorf("uid %d encoded to %q, which is not URL-safe", id, encoded)
		}

		decoded, err := auth.DecodeUID(encoded)
		if err != nil {
			t.Fatalf("decode %q: %v", encoded, err)
		}
		if decoded != id {
			t.Errorf("round trip of %d gave %d", id, decoded)
		}
	}
}

func TestDecodeUIDRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "!!!", "bm90LWEtbnVtYmVy"} { // last one decodes to "not-a-number"
		if _, err := auth.DecodeUID(in); err == nil {
			t.Errorf("expected %q to fail decoding", in)
		}
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pw")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret-pw" {
		t.Fatal("password must not be stored as plain text")
	}

	if !auth.CheckPassword(hash, "s3cret-pw") {
		t.Error("the correct password must verify")
	}
	if auth.CheckPassword(hash, "wrong") {
		t.Error("a wrong password must not verify")
	}
}
