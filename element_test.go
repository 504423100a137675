package klv

import "testing"

func TestBytesParser_roundTrip(t *testing.T) {
	payload, _ := hexStrToBytes("AA 43")
	el, err := BytesParser{}.Parse([]byte{0x01}, "Checksum", payload)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := el.Value.Display(); got != "AA 43" {
		t.Fatalf("got %q want %q", got, "AA 43")
	}
	if got := el.String(); got != "Checksum=AA 43" {
		t.Fatalf("got %q", got)
	}

	wire := append([]byte{0x01, 0x02}, payload...)
	if got := el.Bytes(); string(got) != string(wire) {
		t.Fatalf("Bytes() = %x want %x", got, wire)
	}
}

func TestStringParser(t *testing.T) {
	payload := []byte("Mission 12")
	el, err := StringParser{}.Parse([]byte{0x03}, "Mission ID", payload)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := el.Value.Text(); got != "Mission 12" {
		t.Fatalf("got %q", got)
	}
}

func TestIntegerParser_outOfDomain(t *testing.T) {
	p := IntegerParser{DomainLo: 0, DomainHi: 255}
	if _, err := p.Parse([]byte{0x41}, "Version", []byte{0xFF, 0xFF}); err != errorIntegerOutOfDomain {
		t.Fatalf("expected errorIntegerOutOfDomain, got %v", err)
	}
}

func TestIntegerParser_withinDomain(t *testing.T) {
	p := IntegerParser{DomainLo: 0, DomainHi: 255}
	el, err := p.Parse([]byte{0x41}, "Version", []byte{0x02})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := el.Value.Int(); got != 2 {
		t.Fatalf("got %d want 2", got)
	}
}

func TestMappedParser_heading(t *testing.T) {
	p, err := NewMappedParser(0, 1<<16-1, 0, 360, "degrees")
	if err != nil {
		t.Fatalf("NewMappedParser: %v", err)
	}
	payload, _ := hexStrToBytes("71 C2")
	el, err := p.Parse([]byte{0x05}, "Platform Heading Angle", payload)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	f, units := el.Value.Float()
	if units != "degrees" {
		t.Fatalf("units = %q", units)
	}
	if f < 159.9 || f > 160.0 {
		t.Fatalf("got %v, want ~159.974", f)
	}
}

func TestTimestampParser(t *testing.T) {
	payload, _ := hexStrToBytes("00 04 60 50 58 4E 01 80")
	el, err := TimestampParser{}.Parse([]byte{0x02}, "Precision Timestamp", payload)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := el.Value.Time().String(); got != "2009-01-12 22:08:22+00:00" {
		t.Fatalf("got %q", got)
	}
}

func TestUnknownElement_preservesBytes(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03}
	el := unknownElement([]byte{0x2A}, payload)
	want := append([]byte{0x2A, 0x03}, payload...)
	if got := el.Bytes(); string(got) != string(want) {
		t.Fatalf("Bytes() = %x want %x", got, want)
	}
	if el.Value.Kind() != KindRaw {
		t.Fatalf("expected KindRaw for unknown element")
	}
}
