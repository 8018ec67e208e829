/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	offsetTableSize = 12
	tableRecordSize = 16
)

// offsetTable is the font program header preceding the table records.
type offsetTable struct {
	sfntVersion   uint32
	numTables     uint16
	searchRange   uint16
	entrySelector uint16
	rangeShift    uint16
}

func (f *font) parseOffsetTable(r *byteReader) (*offsetTable, error) {
	if r.Len() < offsetTableSize {
		logrus.Debugf("Font program too short for offset table (%d bytes)", r.Len())
		return nil, errors.Wrap(ErrMalformedDirectory, "offset table")
	}

	ot := &offsetTable{}
	err := r.read(&ot.sfntVersion, &ot.numTables, &ot.searchRange, &ot.entrySelector, &ot.rangeShift)
	if err != nil {
		return nil, err
	}

	switch ot.sfntVersion {
	case 0x00010000, 0x74727565: // 1.0, 'true'
	default:
		logrus.Debugf("Unexpected sfnt version 0x%08X", ot.sfntVersion)
	}

	end := int64(offsetTableSize) + int64(ot.numTables)*tableRecordSize
	if end > r.Len() {
		logrus.Debugf("Table directory exceeds font program (%d tables, %d > %d)", ot.numTables, end, r.Len())
		return nil, errors.Wrapf(ErrMalformedDirectory, "%d table records", ot.numTables)
	}

	return ot, nil
}
