// Package plugin reads the TES4 record header of Gamebryo-era plugin files
// (.esm/.esp): the master file list and the record flags.
package plugin

import (
	"bytes"
	"encoding/binary"
	"io"
	"strings"

	"github.com/Punkwe1ght/modsync/pkg/errors"
)

const (
	// PrologueLen is type[4] + dataSize[4] + flags[4] + formId[4] + vcInfo[4].
	PrologueLen = 20
	// SubRecordHeaderLen is type[4] + size[2].
	SubRecordHeaderLen = 6

	flagMaster uint32 = 1
)

var (
	signature     = []byte("TES4")
	masterSubType = []byte("MAST")
)

// Sentinel errors. They are coded errors, so both errors.Is and
// IsErrorCode work on anything wrapping them.
var (
	ErrUnrecognizedFormat = errors.New(errors.ErrUnrecognizedFormat, "plugin: not a TES4 record")
	ErrTruncatedInput     = errors.New(errors.ErrTruncatedInput, "plugin: truncated header")
)

// Header is the decoded TES4 record.
type Header struct {
	// Masters lists master file names in declaration order; never nil.
	Masters []string
	Flags   uint32
}

// IsMaster reports bit 0 of the record flags.
func (h *Header) IsMaster() bool {
	return h.Flags&flagMaster != 0
}

// Parse reads a TES4 header from r, which must be positioned at offset 0.
// Sub-records are read until the declared data size is consumed or fewer
// than six bytes of it remain.
func Parse(r io.Reader) (*Header, error) {
	var prologue [PrologueLen]byte
	n, err := io.ReadFull(r, prologue[:])
	if n < len(signature) {
		if !bytes.HasPrefix(signature, prologue[:n]) || n == 0 && err == io.EOF {
			return nil, ErrUnrecognizedFormat
		}
		return nil, ErrTruncatedInput
	}
	if !bytes.Equal(prologue[:4], signature) {
		return nil, ErrUnrecognizedFormat
	}
	if err != nil {
		return nil, ErrTruncatedInput
	}

	dataSize := int64(binary.LittleEndian.Uint32(prologue[4:8]))
	h := &Header{
		Masters: []string{},
		Flags:   binary.LittleEndian.Uint32(prologue[8:12]),
	}

	var pos int64
	var sub [SubRecordHeaderLen]byte
	for pos < dataSize {
		if dataSize-pos < SubRecordHeaderLen {
			break
		}
		if _, err := io.ReadFull(r, sub[:]); err != nil {
			return nil, ErrTruncatedInput
		}
		size := int64(binary.LittleEndian.Uint16(sub[4:6]))
		pos += SubRecordHeaderLen + size

		if bytes.Equal(sub[:4], masterSubType) {
			name := make([]byte, size)
			if _, err := io.ReadFull(r, name); err != nil {
				return nil, ErrTruncatedInput
			}
			if master := strings.TrimRight(string(name), "\x00"); master != "" {
				h.Masters = append(h.Masters, master)
			}
			continue
		}

		if size > 0 {
			if _, err := io.CopyN(io.Discard, r, size); err != nil {
				return nil, ErrTruncatedInput
			}
		}
	}

	return h, nil
}
