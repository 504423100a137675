package klv

import "testing"

func TestComputeChecksum_lowBitsOfSum(t *testing.T) {
	prefix := []byte{0x01, 0x02, 0x03, 0x04}
	want := uint16(0x01 + 0x02 + 0x03 + 0x04)
	if got := ComputeChecksum(prefix); got != want {
		t.Fatalf("got %#x want %#x", got, want)
	}
}

func TestComputeChecksum_wraps(t *testing.T) {
	prefix := make([]byte, 300)
	for i := range prefix {
		prefix[i] = 0xFF
	}
	var sum uint32
	for _, b := range prefix {
		sum += uint32(b)
	}
	if got := ComputeChecksum(prefix); got != uint16(sum) {
		t.Fatalf("got %#x want %#x", got, uint16(sum))
	}
}

func TestVerifyChecksum(t *testing.T) {
	prefix := []byte{0x10, 0x20, 0x30}
	sum := ComputeChecksum(prefix)
	declared := []byte{byte(sum >> 8), byte(sum)}
	if !VerifyChecksum(prefix, declared) {
		t.Fatalf("expected checksum to verify")
	}
	bad := []byte{declared[0] ^ 0xFF, declared[1]}
	if VerifyChecksum(prefix, bad) {
		t.Fatalf("expected mismatched checksum to fail verification")
	}
}

func TestVerifyChecksum_wrongLength(t *testing.T) {
	if VerifyChecksum([]byte{0x01}, []byte{0x01}) {
		t.Fatalf("expected a non-2-byte declared checksum to fail")
	}
}
