package scanner

import (
	"encoding/binary"
)

// MaxSerializedSize is the fixed capacity of a state snapshot. A state whose
// encoding would not fit is reported as unserializable, and the caller falls
// back to a full rescan instead of an incremental resume.
const MaxSerializedSize = 1024

// Descriptor bit layout, kept wire-compatible with compiled grammar
// artifacts that embed snapshots.
const (
	delimQuoteMask  = 0xff
	delimTripleFlag = 0x100
	delimRawFlag    = 0x200
	delimFormatFlag = 0x400
)

func packDelimiter(d Delimiter) uint32 {
	res := uint32(d.Quote) & delimQuoteMask
	if d.Triple {
		res |= delimTripleFlag
	}
	if d.Raw {
		res |= delimRawFlag
	}
	if d.Format {
		res |= delimFormatFlag
	}
	return res
}

func unpackDelimiter(v uint32) Delimiter {
	return Delimiter{
		Quote:  rune(v & delimQuoteMask),
		Triple: v&delimTripleFlag != 0,
		Raw:    v&delimRawFlag != 0,
		Format: v&delimFormatFlag != 0,
	}
}

// Serialize encodes the state into a self-contained little-endian buffer:
// a 32-bit count followed by 16-bit indentation widths, a 32-bit count
// followed by 32-bit delimiter descriptors, and one trailing interpolation
// flag byte. The encoding is deterministic for a given logical state.
// Returns a zero-length result if the encoding would exceed MaxSerializedSize.
func (s *State) Serialize() []byte {
	size := 4 + 2*len(s.indents) + 4 + 4*len(s.delimiters) + 1
	if size > MaxSerializedSize {
		return nil
	}

	buf := make([]byte, 0, size)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s.indents)))
	for _, w := range s.indents {
		buf = binary.LittleEndian.AppendUint16(buf, w)
	}

	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s.delimiters)))
	for _, d := range s.delimiters {
		buf = binary.LittleEndian.AppendUint32(buf, packDelimiter(d))
	}

	if s.interpolation {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}

	return buf
}

// Restore replaces the state with the one encoded in buf. An empty,
// truncated, or otherwise malformed buffer resets the state to the all-empty
// state; Restore never fails. Giving up the snapshot on corrupt input is
// recoverable upstream by a full rescan.
func (s *State) Restore(buf []byte) {
	s.reset()
	if len(buf) == 0 {
		return
	}

	pos := 0
	if pos+4 > len(buf) {
		return
	}
	indentCount := int(binary.LittleEndian.Uint32(buf[pos:]))
	pos += 4

	if indentCount < 0 || pos+2*indentCount > len(buf) {
		return
	}
	for i := 0; i < indentCount; i++ {
		s.indents = append(s.indents, binary.LittleEndian.Uint16(buf[pos:]))
		pos += 2
	}

	if pos+4 > len(buf) {
		s.reset()
		return
	}
	delimCount := int(binary.LittleEndian.Uint32(buf[pos:]))
	pos += 4

	if delimCount < 0 || pos+4*delimCount > len(buf) {
		s.reset()
		return
	}
	for i := 0; i < delimCount; i++ {
		s.delimiters = append(s.delimiters, unpackDelimiter(binary.LittleEndian.Uint32(buf[pos:])))
		pos += 4
	}

	if pos >= len(buf) {
		s.reset()
		return
	}
	s.interpolation = buf[pos] == 1
}

// Deserialize creates a state from a snapshot produced by Serialize.
func Deserialize(buf []byte) *State {
	s := New()
	s.Restore(buf)
	return s
}
