package klv

/*
set.go implements the recursive local-set parser: a payload that is a
concatenation of BER-OID-keyed TLVs is decoded into an ordered sequence
of [Element] values, with lookup by numeric tag. Nested sets (a registry
entry whose factory is itself a [SetParser]) fall out of this same
algorithm recursively, since decoding a nested set's payload is just
another call to decodeSet.
*/

/*
Set is an ordered sequence of [Element] values plus an associative
lookup by numeric tag. Order is wire order; duplicate tags are
preserved in iteration, with lookup-by-tag resolving to the
last-written element (spec.md §3).
*/
type Set struct {
	Elements []*Element
	byTag    map[int64]*Element
}

// Len returns the number of elements in the set.
func (s *Set) Len() int { return len(s.Elements) }

// ByTag returns the last-written element registered under the given
// numeric tag, and whether one was found.
func (s *Set) ByTag(tag int64) (*Element, bool) {
	e, ok := s.byTag[tag]
	return e, ok
}

/*
Bytes concatenates each child element's serialized form in stored
(wire) order, giving byte-exact round-tripping of the set's payload for
any set composed only of known tags, and also for unknown tags via the
preservation policy in decodeSet.
*/
func (s *Set) Bytes() []byte {
	var out []byte
	for _, e := range s.Elements {
		out = append(out, e.Bytes()...)
	}
	return out
}

func (s *Set) String() string {
	parts := make([]string, len(s.Elements))
	for i, e := range s.Elements {
		parts[i] = e.String()
	}
	return "{" + join(parts, ", ") + "}"
}

/*
decodeSet decodes payload as a concatenation of BER-OID-keyed TLVs,
dispatching each to the parser registered in registry (or to the
generic unknown-element fallback), per spec.md §4.5:

 1. Initialize an empty ordered element list and position p = 0.
 2. While p < len(payload):
    a. Decode the BER-OID key at p, advance p.
    b. Decode the BER length L, advance p.
    c. If p+L overruns payload, report truncation and stop.
    d. Slice value_bytes = payload[p:p+L], advance p.
    e. Dispatch to the registered parser, or fall back to unknown.
    f. Append to the element list.
 3. Return the elements in wire order.

A truncated trailing TLV is reported but does not discard the elements
already decoded -- the caller receives both the partial [Set] and the
error, matching spec.md §7's "partial elements discarded, errors
contained to the packet" propagation policy: it is the caller (the
packet or stream parser) that decides whether a truncated child is
fatal to the whole packet.
*/
func decodeSet(payload []byte, registry *Registry) (*Set, error) {
	set := &Set{byTag: make(map[int64]*Element)}

	p := 0
	for p < len(payload) {
		keyBytes, tag, err := decodeBEROIDKey(payload[p:])
		if err != nil {
			return set, err
		}
		p += len(keyBytes)

		if p >= len(payload) {
			return set, errorTruncatedLength
		}
		length, consumed, err := decodeBERLength(payload[p:])
		if err != nil {
			return set, err
		}
		p += consumed

		if p+length > len(payload) {
			return set, errorTruncatedContent
		}
		valueBytes := payload[p : p+length]
		p += length

		elem, perr := parseElement(registry, keyBytes, valueBytes)
		if perr != nil {
			// A parser rejecting the payload's interpretation (e.g. an
			// out-of-domain integer) does not abort the set: the
			// element is preserved with its raw bytes, matching the
			// "never fatal to the packet" treatment spec.md §7 gives
			// element-level decode failures.
			elem = unknownElement(keyBytes, valueBytes)
		}

		set.Elements = append(set.Elements, elem)
		set.byTag[tag] = elem
	}

	return set, nil
}

func parseElement(registry *Registry, keyBytes, valueBytes []byte) (*Element, error) {
	if registry == nil {
		return unknownElement(keyBytes, valueBytes), nil
	}
	entry, ok := registry.lookup(keyBytes)
	if !ok {
		return unknownElement(keyBytes, valueBytes), nil
	}
	return entry.parser.Parse(keyBytes, entry.name, valueBytes)
}
