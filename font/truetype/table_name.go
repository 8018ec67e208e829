/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Name IDs used by the decoder.
const (
	nameIDFamily    = 1
	nameIDSubfamily = 2
)

// nameTable represents the Naming table (name).
// The naming table allows multilingual strings to be associated with the font.
// These strings can represent copyright notices, font names, family names, style names, and so on.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name
type nameTable struct {
	// format >= 0
	format       uint16
	count        uint16
	stringOffset offset16
	nameRecords  []*nameRecord // len = count.
}

// Each string in the string storage is referenced by a name record.
type nameRecord struct {
	platformID uint16
	encodingID uint16
	languageID uint16
	nameID     uint16
	length     uint16
	offset     offset16
	data       []byte // actual string data.
}

// Decoded decodes the string data of `nr` according to its platform and encoding. When the
// encoding cannot be applied the raw bytes are used as text.
func (nr nameRecord) Decoded() string {
	s, err := decodeName(nr.platformID, nr.encodingID, nr.data)
	if err != nil {
		logrus.Debugf("Name %d: %v - using raw bytes", nr.nameID, err)
	}
	return strings.TrimRight(s, "\x00")
}

// GetNameByID returns the first entry in the name table with `nameID`.
// An empty string is returned otherwise (nothing found).
func (t *nameTable) GetNameByID(nameID int) string {
	if t == nil {
		return ""
	}
	for _, nr := range t.nameRecords {
		if int(nr.nameID) == nameID {
			return nr.Decoded()
		}
	}
	return ""
}

// family returns the family name. A Windows Unicode record takes precedence over records for
// other platforms.
func (t *nameTable) family() string {
	if t == nil {
		return ""
	}
	var best *nameRecord
	for _, nr := range t.nameRecords {
		if nr.nameID != nameIDFamily || len(nr.data) == 0 {
			continue
		}
		if best == nil || (nr.platformID == platformIDWindows && nr.encodingID == windowsUnicodeBMP &&
			!(best.platformID == platformIDWindows && best.encodingID == windowsUnicodeBMP)) {
			best = nr
		}
	}
	if best == nil {
		return ""
	}
	return best.Decoded()
}

func (f *font) parseNameTable(r *byteReader) (*nameTable, error) {
	tr, has, err := f.seekToTable(r, "name")
	if err != nil {
		return nil, err
	}
	if !has {
		logrus.Debug("name table not present")
		return nil, nil
	}

	t := &nameTable{}
	err = r.read(&t.format, &t.count, &t.stringOffset)
	if err != nil {
		return nil, err
	}
	if t.format > 1 {
		logrus.Debugf("name table format > 1 (%d) - ignored", t.format)
		return nil, nil
	}

	for i := 0; i < int(t.count); i++ {
		var nr nameRecord
		err = r.read(&nr.platformID, &nr.encodingID, &nr.languageID, &nr.nameID, &nr.length, &nr.offset)
		if err != nil {
			return nil, err
		}
		t.nameRecords = append(t.nameRecords, &nr)
	}

	// Get the actual string data. Language tag records of format 1 are not needed.
	for _, nr := range t.nameRecords {
		if int(t.stringOffset)+int(nr.offset)+int(nr.length) > int(tr.length) {
			logrus.Debugf("name string offset outside table (nameID %d) - skipped", nr.nameID)
			continue
		}

		err = r.Seek(int64(tr.offset) + int64(t.stringOffset) + int64(nr.offset))
		if err != nil {
			return nil, err
		}

		err = r.readBytes(&nr.data, int(nr.length))
		if err != nil {
			return nil, err
		}
	}

	logrus.Debugf("Name records: %d", len(t.nameRecords))
	for _, nr := range t.nameRecords {
		if !logrus.IsLevelEnabled(logrus.TraceLevel) {
			break
		}
		logrus.Tracef("%d %d %d - '%s' (%d)", nr.platformID, nr.encodingID, nr.nameID, nr.Decoded(), len(nr.data))
	}

	return t, nil
}
