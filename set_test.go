package klv

import "testing"

func buildUASRegistry() *Registry {
	r := NewRegistry()
	r.RegisterTag(0x01, "Checksum", BytesParser{})
	r.RegisterTag(0x03, "Mission ID", StringParser{})
	heading, _ := NewMappedParser(0, 1<<16-1, 0, 360, "degrees")
	r.RegisterTag(0x05, "Platform Heading Angle", heading)
	return r
}

func TestDecodeSet_wireOrderAndLookup(t *testing.T) {
	registry := buildUASRegistry()

	mission, _ := hexStrToBytes("4D 69 73 73 69 6F 6E 20 31 32") // "Mission 12"
	heading, _ := hexStrToBytes("71 C2")

	payload := append([]byte{0x03, byte(len(mission))}, mission...)
	payload = append(payload, 0x05, byte(len(heading)))
	payload = append(payload, heading...)

	set, err := decodeSet(payload, registry)
	if err != nil {
		t.Fatalf("decodeSet: %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}
	if set.Elements[0].Value.Kind() != KindText {
		t.Fatalf("expected first element to be the mission ID text")
	}
	if set.Elements[1].Value.Kind() != KindFloat {
		t.Fatalf("expected second element to be the mapped heading")
	}

	el, ok := set.ByTag(0x03)
	if !ok || el.Value.Text() != "Mission 12" {
		t.Fatalf("ByTag(0x03) lookup failed")
	}
}

func TestDecodeSet_roundTripsBytes(t *testing.T) {
	registry := buildUASRegistry()
	mission, _ := hexStrToBytes("4D 69 73 73 69 6F 6E 20 31 32")
	payload := append([]byte{0x03, byte(len(mission))}, mission...)

	set, err := decodeSet(payload, registry)
	if err != nil {
		t.Fatalf("decodeSet: %v", err)
	}
	if got := set.Bytes(); string(got) != string(payload) {
		t.Fatalf("Bytes() = %x want %x", got, payload)
	}
}

func TestDecodeSet_unknownTagPreserved(t *testing.T) {
	registry := buildUASRegistry()
	payload := []byte{0x2A, 0x02, 0xDE, 0xAD}

	set, err := decodeSet(payload, registry)
	if err != nil {
		t.Fatalf("decodeSet: %v", err)
	}
	if set.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", set.Len())
	}
	if set.Elements[0].Value.Kind() != KindRaw {
		t.Fatalf("expected unknown tag to decode as raw")
	}
	if got := set.Bytes(); string(got) != string(payload) {
		t.Fatalf("Bytes() = %x want %x", got, payload)
	}
}

func TestDecodeSet_truncatedContentReturnsPartial(t *testing.T) {
	registry := buildUASRegistry()
	// Tag 0x03, declared length 10, but only 2 bytes of payload follow.
	payload := []byte{0x03, 0x0A, 0x4D, 0x69}

	set, err := decodeSet(payload, registry)
	if err != errorTruncatedContent {
		t.Fatalf("expected errorTruncatedContent, got %v", err)
	}
	if set == nil || set.Len() != 0 {
		t.Fatalf("expected an empty (not nil) partial set")
	}
}

func TestDecodeSet_integerParserRejectionDegradesToUnknown(t *testing.T) {
	registry := NewRegistry()
	registry.RegisterTag(0x41, "Version", IntegerParser{DomainLo: 0, DomainHi: 1})
	// Payload decodes to 2, outside the registered domain: the element
	// must be preserved as an unknown/raw element, not dropped.
	payload := []byte{0x41, 0x01, 0x02}

	set, err := decodeSet(payload, registry)
	if err != nil {
		t.Fatalf("decodeSet: %v", err)
	}
	if set.Len() != 1 || set.Elements[0].Value.Kind() != KindRaw {
		t.Fatalf("expected parser rejection to degrade to a raw element")
	}
}
