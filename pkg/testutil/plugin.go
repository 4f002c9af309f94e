package testutil

import (
	"bytes"
	"encoding/binary"
	"math"
)

// PluginBytes builds a minimal TES4 record: a HEDR sub-record followed by
// a MAST and DATA pair per master.
func PluginBytes(flags uint32, masters ...string) []byte {
	var sub bytes.Buffer
	subRecord(&sub, "HEDR", func(b *bytes.Buffer) {
		_ = binary.Write(b, binary.LittleEndian, math.Float32bits(1.34))
		_ = binary.Write(b, binary.LittleEndian, uint32(0))
		_ = binary.Write(b, binary.LittleEndian, uint32(0))
	})
	for _, m := range masters {
		subRecord(&sub, "MAST", func(b *bytes.Buffer) {
			b.WriteString(m)
			b.WriteByte(0)
		})
		subRecord(&sub, "DATA", func(b *bytes.Buffer) {
			b.Write(make([]byte, 8))
		})
	}
	return Record(flags, sub.Bytes())
}

// Record wraps raw sub-record bytes in a TES4 prologue.
func Record(flags uint32, subRecords []byte) []byte {
	var out bytes.Buffer
	out.WriteString("TES4")
	_ = binary.Write(&out, binary.LittleEndian, uint32(len(subRecords)))
	_ = binary.Write(&out, binary.LittleEndian, flags)
	_ = binary.Write(&out, binary.LittleEndian, uint32(0))
	_ = binary.Write(&out, binary.LittleEndian, uint32(0))
	out.Write(subRecords)
	return out.Bytes()
}

// SubRecord encodes one sub-record with the given payload.
func SubRecord(tag string, payload []byte) []byte {
	var b bytes.Buffer
	subRecord(&b, tag, func(b *bytes.Buffer) { b.Write(payload) })
	return b.Bytes()
}

func subRecord(out *bytes.Buffer, tag string, body func(*bytes.Buffer)) {
	var payload bytes.Buffer
	body(&payload)
	out.WriteString(tag)
	_ = binary.Write(out, binary.LittleEndian, uint16(payload.Len()))
	out.Write(payload.Bytes())
}
