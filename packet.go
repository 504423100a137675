package klv

/*
packet.go implements Packet, the outer KLV framing described in
spec.md §3: a Set whose payload is prefixed by a 16-byte Universal
Label and a BER outer length.
*/

// UL is a fixed 16-byte Universal Label, compared by value.
type UL [16]byte

func (u UL) String() string { return bytesToHexStr(u[:]) }

// UASDatalinkLocalSetUL is the canonical Universal Label for the MISB
// ST 0601 UAS Datalink Local Metadata Set (spec.md §6).
var UASDatalinkLocalSetUL = UL{
	0x06, 0x0E, 0x2B, 0x34, 0x02, 0x0B, 0x01, 0x01,
	0x0E, 0x01, 0x03, 0x01, 0x01, 0x00, 0x00, 0x00,
}

/*
Packet is a top-level KLV packet: a 16-byte UL, a BER length, and a
payload decoded as a [Set]. ChecksumPresent/ChecksumValid are populated
whenever the packet's set carries a tag-0x01 (§4.4) checksum element; a
mismatch never prevents the packet from being yielded.
*/
type Packet struct {
	Label  UL
	Set    *Set
	raw    []byte // the full packet encoding, as consumed from the wire

	ChecksumPresent bool
	ChecksumValid   bool
}

// Bytes returns the full UL‖BER(length)‖payload encoding of the
// receiver, reproducing the original input byte-for-byte for any
// packet decoded without truncation.
func (p *Packet) Bytes() []byte {
	payload := p.Set.Bytes()
	out := make([]byte, 0, 16+5+len(payload))
	out = append(out, p.Label[:]...)
	out = append(out, encodeBERLength(len(payload))...)
	out = append(out, payload...)
	return out
}

/*
decodePacket decodes one packet whose 16-byte UL ul was already
identified by the caller (the stream parser's synchronization step).
data begins just after that UL: a BER outer length at data[0], followed
by that many payload bytes.

registry is the UL-specific set registry to use for the payload.
*/
func decodePacket(ul UL, registry *Registry, data []byte) (*Packet, int, error) {
	if len(data) < 1 {
		return nil, 0, errorTruncatedLength
	}
	length, consumed, err := decodeBERLength(data)
	if err != nil {
		return nil, 0, err
	}
	if consumed+length > len(data) {
		return nil, 0, errorTruncatedPacket
	}

	payload := data[consumed : consumed+length]
	set, serr := decodeSet(payload, registry)
	// A truncated child TLV is fatal to the packet (spec.md §7: errors
	// that prevent advancing the cursor trigger resync at the stream
	// level), but a per-element parse rejection already degraded to an
	// unknown element inside decodeSet and is not propagated here.
	if serr != nil {
		return nil, 0, serr
	}

	pkt := &Packet{Label: ul, Set: set}
	pkt.raw = append(append([]byte(nil), ul[:]...), data[:consumed+length]...)

	if cksum, ok := set.ByTag(ChecksumTag); ok && cksum.Value.Kind() == KindRaw {
		pkt.ChecksumPresent = true
		prefixLen := checksumPrefixLength(ul, data[:consumed], set, cksum)
		pkt.ChecksumValid = VerifyChecksum(pkt.raw[:prefixLen], cksum.ValueBytes)
	}

	return pkt, consumed + length, nil
}

// checksumPrefixLength computes how many bytes of pkt.raw (UL ‖ outer
// length ‖ payload-so-far) precede the checksum element's own 2-byte
// payload, i.e. UL + outer-length + every preceding sibling element's
// bytes + the checksum element's own key+length bytes.
func checksumPrefixLength(ul UL, outerLength []byte, set *Set, cksum *Element) int {
	n := len(ul) + len(outerLength)
	for _, e := range set.Elements {
		if e == cksum {
			n += len(e.Key) + len(encodeBERLength(e.Length))
			break
		}
		n += len(e.Bytes())
	}
	return n
}
