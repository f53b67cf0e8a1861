// This file is part of tiasound.
//
// tiasound is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tiasound is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tiasound.  If not, see <https://www.gnu.org/licenses/>.

package serializer

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// maximum length of string accepted by GetString(). longer lengths are
// assumed to be corrupt data.
const maxStringLen = 1024

// Serializer is a binary stream of state values.
type Serializer struct {
	buf *bytes.Buffer
	r   *bytes.Reader
}

// NewSerializer creates a stream ready for writing.
func NewSerializer() *Serializer {
	return &Serializer{
		buf: &bytes.Buffer{},
	}
}

// NewDeserializer creates a stream ready for reading the data.
func NewDeserializer(data []byte) *Serializer {
	return &Serializer{
		r: bytes.NewReader(data),
	}
}

// Bytes returns the data written to the stream. Returns nil if the stream was
// created with NewDeserializer().
func (s *Serializer) Bytes() []byte {
	if s.buf == nil {
		return nil
	}
	return s.buf.Bytes()
}

// Remaining returns the number of bytes that have not yet been read.
func (s *Serializer) Remaining() int {
	if s.r == nil {
		return 0
	}
	return s.r.Len()
}

func (s *Serializer) write(v any) error {
	if s.buf == nil {
		return fmt.Errorf("serializer: stream is not writable")
	}
	return binary.Write(s.buf, binary.LittleEndian, v)
}

func (s *Serializer) read(v any) error {
	if s.r == nil {
		return fmt.Errorf("serializer: stream is not readable")
	}
	if err := binary.Read(s.r, binary.LittleEndian, v); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("serializer: %w", err)
	}
	return nil
}

// PutString writes a length prefixed string.
func (s *Serializer) PutString(v string) error {
	if err := s.write(uint32(len(v))); err != nil {
		return err
	}
	if s.buf == nil {
		return fmt.Errorf("serializer: stream is not writable")
	}
	s.buf.WriteString(v)
	return nil
}

// PutByte writes a single byte.
func (s *Serializer) PutByte(v uint8) error {
	return s.write(v)
}

// PutInt writes a signed 32bit integer.
func (s *Serializer) PutInt(v int32) error {
	return s.write(v)
}

// PutBool writes a boolean as a single byte.
func (s *Serializer) PutBool(v bool) error {
	var b uint8
	if v {
		b = 1
	}
	return s.write(b)
}

// GetString reads a length prefixed string.
func (s *Serializer) GetString() (string, error) {
	var n uint32
	if err := s.read(&n); err != nil {
		return "", err
	}
	if n > maxStringLen || int(n) > s.r.Len() {
		return "", fmt.Errorf("serializer: string length %d is not valid", n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(s.r, b); err != nil {
		return "", fmt.Errorf("serializer: %w", err)
	}
	return string(b), nil
}

// GetByte reads a single byte.
func (s *Serializer) GetByte() (uint8, error) {
	var v uint8
	err := s.read(&v)
	return v, err
}

// GetInt reads a signed 32bit integer.
func (s *Serializer) GetInt() (int32, error) {
	var v int32
	err := s.read(&v)
	return v, err
}

// GetBool reads a boolean written with PutBool().
func (s *Serializer) GetBool() (bool, error) {
	v, err := s.GetByte()
	return v != 0, err
}
