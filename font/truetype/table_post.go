/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/sirupsen/logrus"

// postTable represents the header of the PostScript (post) table. The glyph names that follow
// the header in versions 2.0 and 2.5 are not decoded.
// https://docs.microsoft.com/en-us/typography/opentype/spec/post
type postTable struct {
	version            fixed
	italicAngle        fixed // in degrees.
	underlinePosition  fword
	underlineThickness fword
	isFixedPitch       uint32
}

func (f *font) parsePost(r *byteReader) (*postTable, error) {
	_, has, err := f.seekToTable(r, "post")
	if err != nil {
		return nil, err
	}
	if !has {
		logrus.Debug("post table not present")
		return nil, nil
	}

	t := &postTable{}
	err = r.read(&t.version, &t.italicAngle, &t.underlinePosition, &t.underlineThickness, &t.isFixedPitch)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("post: version %v italicAngle %v fixedPitch %d", t.version.Float64(), t.italicAngle.Float64(), t.isFixedPitch)

	return t, nil
}
