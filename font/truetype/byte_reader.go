/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// byteReader reads big endian binary data from an immutable in-memory font program.
// The read position is kept as a bit pointer so that bit-field reads and byte aligned reads
// can be mixed. Byte aligned reads first advance the pointer to the next byte boundary.
type byteReader struct {
	data   []byte
	bitPos int64

	// Saved positions for Mark/Reset.
	marks []int64
}

func newByteReader(data []byte) *byteReader {
	return &byteReader{data: data}
}

// Len returns the length of the underlying buffer in bytes.
func (r *byteReader) Len() int64 {
	return int64(len(r.data))
}

// Offset returns current byte offset position of `r`, rounded up to the next byte boundary.
func (r *byteReader) Offset() int64 {
	return (r.bitPos + 7) / 8
}

// Seek seeks to byte offset `offset`.
func (r *byteReader) Seek(offset int64) error {
	if offset < 0 || offset > r.Len() {
		return errors.Wrapf(ErrTruncatedBuffer, "seek to %d (len %d)", offset, r.Len())
	}
	r.bitPos = offset * 8
	return nil
}

// BitPointer returns the absolute bit position of `r`.
func (r *byteReader) BitPointer() int64 {
	return r.bitPos
}

// SetBitPointer sets the absolute bit position of `r`.
func (r *byteReader) SetBitPointer(pos int64) error {
	if pos < 0 || pos > r.Len()*8 {
		return errors.Wrapf(ErrTruncatedBuffer, "bit pointer %d (len %d)", pos, r.Len())
	}
	r.bitPos = pos
	return nil
}

// Mark saves the current position. Every Mark must be paired with a Reset.
func (r *byteReader) Mark() {
	r.marks = append(r.marks, r.bitPos)
}

// Reset restores the position saved by the most recent Mark.
func (r *byteReader) Reset() error {
	if len(r.marks) == 0 {
		logrus.Debug("ERROR: reset without mark")
		return errInvalidContext
	}
	r.bitPos = r.marks[len(r.marks)-1]
	r.marks = r.marks[:len(r.marks)-1]
	return nil
}

// Skip skips over `n` bytes.
func (r *byteReader) Skip(n int) error {
	_, err := r.take(n)
	return err
}

// take aligns `r` to a byte boundary and returns the next `n` bytes.
func (r *byteReader) take(n int) ([]byte, error) {
	start := r.Offset()
	end := start + int64(n)
	if n < 0 || end > r.Len() {
		return nil, errors.Wrapf(ErrTruncatedBuffer, "read %d bytes at offset %d (len %d)", n, start, r.Len())
	}
	r.bitPos = end * 8
	return r.data[start:end], nil
}

// readBytes reads bytes straight from `r`. The returned slice is a copy.
func (r *byteReader) readBytes(bp *[]byte, length int) error {
	b, err := r.take(length)
	if err != nil {
		return err
	}
	*bp = make([]byte, length)
	copy(*bp, b)
	return nil
}

// readBits reads an unsigned bit-field of `n` bits (n <= 32), most significant bit first.
func (r *byteReader) readBits(n uint) (uint32, error) {
	if n > 32 {
		return 0, errRangeCheck
	}
	if r.bitPos+int64(n) > r.Len()*8 {
		return 0, errors.Wrapf(ErrTruncatedBuffer, "read %d bits at bit %d (len %d)", n, r.bitPos, r.Len())
	}
	var val uint32
	for i := uint(0); i < n; i++ {
		b := r.data[r.bitPos/8]
		bit := (b >> (7 - uint(r.bitPos%8))) & 1
		val = val<<1 | uint32(bit)
		r.bitPos++
	}
	return val, nil
}

// readSignedBits reads a two's complement bit-field of `n` bits.
func (r *byteReader) readSignedBits(n uint) (int32, error) {
	val, err := r.readBits(n)
	if err != nil || n == 0 {
		return 0, err
	}
	if n < 32 && val&(1<<(n-1)) != 0 {
		val |= ^uint32(0) << n
	}
	return int32(val), nil
}

// readSlice reads a series of values into `slice` from `r` (big endian).
func (r *byteReader) readSlice(slice interface{}, length int) error {
	switch t := slice.(type) {
	case *[]uint8:
		b, err := r.take(length)
		if err != nil {
			return err
		}
		*t = append(*t, b...)
	case *[]uint16:
		for i := 0; i < length; i++ {
			val, err := r.readUint16()
			if err != nil {
				return err
			}
			*t = append(*t, val)
		}
	case *[]int16:
		for i := 0; i < length; i++ {
			val, err := r.readInt16()
			if err != nil {
				return err
			}
			*t = append(*t, val)
		}
	case *[]offset16:
		for i := 0; i < length; i++ {
			val, err := r.readUint16()
			if err != nil {
				return err
			}
			*t = append(*t, offset16(val))
		}
	case *[]offset32:
		for i := 0; i < length; i++ {
			val, err := r.readUint32()
			if err != nil {
				return err
			}
			*t = append(*t, offset32(val))
		}
	default:
		logrus.Debugf("Unsupported type: %T (readSlice)", t)
		return errTypeCheck
	}
	return nil
}

// read reads a series of fields from `r`.
func (r *byteReader) read(fields ...interface{}) error {
	for _, f := range fields {
		var err error
		switch t := f.(type) {
		case *f2dot14:
			var v int16
			v, err = r.readInt16()
			*t = f2dot14(v)
		case *fixed:
			var v uint32
			v, err = r.readUint32()
			*t = fixed(v)
		case *fword:
			var v int16
			v, err = r.readInt16()
			*t = fword(v)
		case *ufword:
			var v uint16
			v, err = r.readUint16()
			*t = ufword(v)
		case *int8:
			var v uint8
			v, err = r.readUint8()
			*t = int8(v)
		case *int16:
			*t, err = r.readInt16()
		case *longdatetime:
			var b []byte
			b, err = r.take(8)
			if err == nil {
				var v uint64
				for _, c := range b {
					v = v<<8 | uint64(c)
				}
				*t = longdatetime(v)
			}
		case *offset16:
			var v uint16
			v, err = r.readUint16()
			*t = offset16(v)
		case *offset32:
			var v uint32
			v, err = r.readUint32()
			*t = offset32(v)
		case *uint8:
			*t, err = r.readUint8()
		case *uint16:
			*t, err = r.readUint16()
		case *uint32:
			*t, err = r.readUint32()
		case *tag:
			var b []byte
			b, err = r.take(4)
			if err == nil {
				copy(t[:], b)
			}
		default:
			logrus.Debugf("Unsupported type: %T (read)", t)
			return errTypeCheck
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *byteReader) readUint8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *byteReader) readInt8() (int8, error) {
	v, err := r.readUint8()
	return int8(v), err
}

func (r *byteReader) readUint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

func (r *byteReader) readInt16() (int16, error) {
	v, err := r.readUint16()
	return int16(v), err
}

func (r *byteReader) readUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}
