/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/sirupsen/logrus"

	"github.com/unidoc/unisubset/font/model"
)

// cmapTable represents a Character to Glyph Index Mapping Table (cmap).
// This table defines the mapping of character codes to the glyph index values used
// in the font.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap
type cmapTable struct {
	version         uint16
	numTables       uint16
	encodingRecords []encodingRecord // len == numTables

	// Processed data. Subtables are merged in directory order, later subtables overwrite
	// codes mapped by earlier ones.
	charMap model.CharMap
}

type encodingRecord struct {
	platformID uint16
	encodingID uint16
	offset     offset32
}

/*
Regardless of the encoding scheme, character codes that do not correspond to any glyph in the font should be
mapped to glyph index 0. The glyph at this location must be a special glyph representing a missing character,
commonly known as .notdef.
*/

func (f *font) parseCmap(r *byteReader) (*cmapTable, error) {
	tr, has, err := f.seekToTable(r, "cmap")
	if err != nil {
		return nil, err
	}
	if !has {
		logrus.Debug("cmap table absent")
		return nil, nil
	}

	t := &cmapTable{charMap: model.NewCharMap(f.numGlyphs())}
	err = r.read(&t.version, &t.numTables)
	if err != nil {
		return nil, err
	}

	for i := 0; i < int(t.numTables); i++ {
		var enc encodingRecord
		err = r.read(&enc.platformID, &enc.encodingID, &enc.offset)
		if err != nil {
			return nil, err
		}
		t.encodingRecords = append(t.encodingRecords, enc)
	}

	// Process the encoding subtables.
	for _, enc := range t.encodingRecords {
		if int64(enc.offset) >= int64(tr.length) {
			logrus.Debugf("cmap subtable %d/%d outside table (offset %d) - skipped", enc.platformID, enc.encodingID, enc.offset)
			continue
		}
		err = r.Seek(int64(tr.offset) + int64(enc.offset))
		if err != nil {
			return nil, err
		}

		var format uint16
		err = r.read(&format)
		if err != nil {
			return nil, err
		}

		logrus.Debugf("cmap subtable: format %d platform %d encoding %d", format, enc.platformID, enc.encodingID)
		switch format {
		case 0:
			err = f.parseCmapSubtableFormat0(r, &t.charMap)
		case 4:
			err = f.parseCmapSubtableFormat4(r, &t.charMap)
		case 2, 6:
			logrus.Debugf("cmap format %d not decoded", format)
			continue
		default:
			logrus.Debugf("Unsupported cmap format %d", format)
			continue
		}
		if err != nil {
			return nil, err
		}
		t.charMap.Encoding = cmapEncoding(enc.platformID, enc.encodingID)
	}
	logrus.Debugf("cmap: %d codes mapped (%s)", t.charMap.Len(), t.charMap.Encoding)

	return t, nil
}

// cmapSubtableFormat0 represents format 0: Byte encoding table.
// This is the Apple standard character to glyph index mapping table.
type cmapSubtableFormat0 struct {
	length       uint16
	language     uint16
	glyphIDArray []uint8 // len = 256.
}

func (f *font) parseCmapSubtableFormat0(r *byteReader, cm *model.CharMap) error {
	st := cmapSubtableFormat0{}
	err := r.read(&st.length, &st.language)
	if err != nil {
		return err
	}
	if st.length != 262 {
		logrus.Debugf("cmap format 0 length != 262 (%d)", st.length)
	}

	err = r.readSlice(&st.glyphIDArray, 256)
	if err != nil {
		return err
	}

	numGlyphs := f.numGlyphs()
	for code, gid := range st.glyphIDArray {
		g := int(gid)
		if g >= numGlyphs {
			logrus.Debugf("cmap format 0: code %d maps to glyph %d >= %d - unmapped", code, g, numGlyphs)
			g = 0
		}
		cm.Set(code, g)
	}
	return nil
}

// cmapSubtableFormat4 represents cmap data format 4: Segment mapping to delta values.
// This is the standard character-to-glyph index mapping for the Windows platform for fonts that
// support Unicode BMP characters.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap#format-4-segment-mapping-to-delta-values
// [platformID=3 (Windows)].
type cmapSubtableFormat4 struct {
	length        uint16
	language      uint16
	segCountX2    uint16 // 2 * segCount
	searchRange   uint16
	entrySelector uint16
	rangeShift    uint16
	endCode       []uint16 // len = segCount
	reservedPad   uint16
	startCode     []uint16 // len = segCount. Start character code for each segment.
	idDelta       []uint16 // len = segCount. Delta for all character codes in segment.
	idRangeOffset []uint16 // len = segCount. offsets into glyphIDArray or 0.
}

func (f *font) parseCmapSubtableFormat4(r *byteReader, cm *model.CharMap) error {
	st := cmapSubtableFormat4{}
	err := r.read(&st.length, &st.language, &st.segCountX2, &st.searchRange, &st.entrySelector, &st.rangeShift)
	if err != nil {
		return err
	}

	segCount := int(st.segCountX2 / 2)
	logrus.Debugf("Parsing cmap format 4, segCount: %d", segCount)

	err = r.readSlice(&st.endCode, segCount)
	if err != nil {
		return err
	}
	err = r.read(&st.reservedPad)
	if err != nil {
		return err
	}
	err = r.readSlice(&st.startCode, segCount)
	if err != nil {
		return err
	}
	err = r.readSlice(&st.idDelta, segCount)
	if err != nil {
		return err
	}

	// idRangeOffset values are byte offsets from the position of the value itself.
	rangeOffsetBase := r.Offset()
	err = r.readSlice(&st.idRangeOffset, segCount)
	if err != nil {
		return err
	}

	numGlyphs := f.numGlyphs()
	for i := 0; i < segCount; i++ {
		start := int(st.startCode[i])
		end := int(st.endCode[i])
		delta := int(st.idDelta[i])
		rangeOffset := int(st.idRangeOffset[i])
		logrus.Tracef("Segment %d/%d, start: %d, end: %d, delta: %d, rangeOffset: %d",
			i+1, segCount, start, end, delta, rangeOffset)

		for code := start; code <= end; code++ {
			var gid int
			if rangeOffset == 0 {
				gid = (delta + code) & 0xFFFF
			} else {
				addr := rangeOffsetBase + int64(2*i+rangeOffset+2*(code-start))
				v, err := readUint16At(r, addr)
				if err != nil {
					logrus.Debugf("cmap format 4: glyph id of code %d outside buffer (%v)", code, err)
					break
				}
				if v != 0 {
					gid = (int(v) + delta) & 0xFFFF
				}
			}
			if gid >= numGlyphs {
				logrus.Debugf("cmap format 4: code %d maps to glyph %d >= %d - unmapped", code, gid, numGlyphs)
				gid = 0
			}
			if gid == 0 {
				// Undo any mapping of an earlier subtable.
				cm.Clear(code)
				continue
			}
			logrus.Tracef("Charcode:GID - %d:%d", code, gid)
			cm.Set(code, gid)
		}
	}
	return nil
}

// readUint16At reads a uint16 at byte offset `addr` without moving the position of `r`.
func readUint16At(r *byteReader, addr int64) (uint16, error) {
	r.Mark()
	defer r.Reset()

	err := r.Seek(addr)
	if err != nil {
		return 0, err
	}
	return r.readUint16()
}
