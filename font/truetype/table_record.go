/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// tableRecord represents table records, including name (tag) and file offset, size
// and checksum for integrity checking.
type tableRecord struct {
	tableTag tag
	checksum uint32
	offset   offset32
	length   uint32
}

func (tr *tableRecord) read(r *byteReader) error {
	return r.read(&tr.tableTag, &tr.checksum, &tr.offset, &tr.length)
}

// tableRecords represents a set of table records in a truetype font file.
// Includes a map by table name for quick lookup of records.
type tableRecords struct {
	list  []tableRecord
	trMap map[string]tableRecord
}

func (f *font) parseTableRecords(r *byteReader) (*tableRecords, error) {
	trs := &tableRecords{
		trMap: map[string]tableRecord{},
	}

	for i := 0; i < f.numTables(); i++ {
		var rec tableRecord
		err := rec.read(r)
		if err != nil {
			return nil, err
		}
		trs.list = append(trs.list, rec)

		// Offsets are stored in bytes from the start of the font program.
		if int64(rec.offset)+int64(rec.length) > r.Len() {
			return nil, errors.Wrapf(ErrTruncatedBuffer, "table %s (offset %d, length %d, buffer %d)",
				rec.tableTag, rec.offset, rec.length, r.Len())
		}
		if _, dup := trs.trMap[rec.tableTag.String()]; dup {
			logrus.Debugf("Duplicate table record %s - last one wins", rec.tableTag)
		}
		trs.trMap[rec.tableTag.String()] = rec
	}
	logrus.Tracef("%s", trs)

	return trs, nil
}

// seekToTable seeks to position font table `tableName` in `r` if it has the table.
// The table record is returned back when successful, otherwise is meaningless.
// The bool flag indicates that the table exists and should be at that position if there
// was no error.
func (f *font) seekToTable(r *byteReader, tableName string) (tr tableRecord, has bool, err error) {
	tr, has = f.trec.trMap[tableName]
	if !has {
		return tr, false, nil
	}

	err = r.Seek(int64(tr.offset))
	if err != nil {
		return tr, false, err
	}

	return tr, true, nil
}

// HasTable returns true if there is a record of `tableName` in table records `trs`.
func (trs *tableRecords) HasTable(tableName string) bool {
	_, has := trs.trMap[strings.TrimSpace(tableName)]
	return has
}

func (trs *tableRecords) String() string {
	var buf bytes.Buffer
	for i, tr := range trs.list {
		buf.WriteString(fmt.Sprintf("Table record %d: %s offset=%d length=%d\n", i+1, tr.tableTag, tr.offset, tr.length))
	}
	return buf.String()
}
