/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/sirupsen/logrus"

// font is a data model for truetype fonts with basic access methods.
type font struct {
	opts Options

	ot   *offsetTable
	trec *tableRecords // table records (references other tables).
	head *headTable
	maxp *maxpTable
	hhea *hheaTable
	os2  *os2Table
	name *nameTable
	post *postTable
	loca *locaTable
	glyf *glyfTable
	hmtx *hmtxTable
	cmap *cmapTable
}

func (f font) numTables() int {
	return int(f.ot.numTables)
}

// numGlyphs returns the number of glyphs declared in maxp, 0 if maxp is missing.
func (f *font) numGlyphs() int {
	if f.maxp == nil {
		return 0
	}
	return int(f.maxp.numGlyphs)
}

// scale returns the number of design units per EM square unit, 1 if head is missing.
func (f *font) scale() int {
	if f.head == nil {
		return 1
	}
	return f.head.scale()
}

func parseFont(r *byteReader, opts Options) (*font, error) {
	f := &font{opts: opts}

	var err error

	f.ot, err = f.parseOffsetTable(r)
	if err != nil {
		return nil, err
	}

	f.trec, err = f.parseTableRecords(r)
	if err != nil {
		return nil, err
	}

	for _, name := range []string{"head", "maxp", "hhea", "hmtx", "cmap"} {
		if !f.trec.HasTable(name) {
			logrus.Debugf("Table %s missing", name)
		}
	}

	f.head, err = f.parseHead(r)
	if err != nil {
		return nil, err
	}

	f.maxp, err = f.parseMaxp(r)
	if err != nil {
		return nil, err
	}

	f.hhea, err = f.parseHhea(r)
	if err != nil {
		return nil, err
	}

	f.os2, err = f.parseOS2Table(r)
	if err != nil {
		return nil, err
	}

	f.name, err = f.parseNameTable(r)
	if err != nil {
		return nil, err
	}

	f.post, err = f.parsePost(r)
	if err != nil {
		return nil, err
	}

	if !opts.SkipOutlines {
		f.loca, err = f.parseLoca(r)
		if err != nil {
			return nil, err
		}

		f.glyf, err = f.parseGlyf(r)
		if err != nil {
			return nil, err
		}
	}

	f.hmtx, err = f.parseHmtx(r)
	if err != nil {
		return nil, err
	}

	if !opts.SkipCmap {
		f.cmap, err = f.parseCmap(r)
		if err != nil {
			return nil, err
		}
	}

	return f, nil
}
