/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"

	"github.com/unidoc/unisubset/font/model"
)

const (
	platformIDUnicode   = 0
	platformIDMacintosh = 1
	platformIDWindows   = 3
)

// Windows platform encoding IDs.
const (
	windowsSymbol     = 0
	windowsUnicodeBMP = 1
	windowsShiftJIS   = 2
	windowsPRC        = 3
	windowsBig5       = 4
	windowsWansung    = 5
	windowsJohab      = 6
	windowsUCS4       = 10
)

// nameEncoding returns the text encoding of name strings for `platformID` and platform-specific
// `encodingID`, or nil if it is not supported.
func nameEncoding(platformID, encodingID uint16) encoding.Encoding {
	switch platformID {
	case platformIDUnicode:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case platformIDMacintosh:
		return charmap.ISO8859_1
	case platformIDWindows:
		switch encodingID {
		case windowsUnicodeBMP, windowsUCS4:
			return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
		case windowsShiftJIS:
			return japanese.ShiftJIS
		case windowsPRC:
			return simplifiedchinese.GBK
		case windowsBig5:
			return traditionalchinese.Big5
		case windowsJohab:
			logrus.Debugf("Unsupported: PlatformID=%d, EncodingID=%d", platformID, encodingID)
			return nil
		}
		return charmap.Windows1252
	}
	logrus.Debugf("Unsupported: PlatformID=%d, EncodingID=%d", platformID, encodingID)
	return nil
}

// decodeName decodes name string `data` stored with `platformID`, `encodingID`. If the encoding
// cannot be applied, the bytes are returned as is, together with an ErrUnsupportedEncoding error.
func decodeName(platformID, encodingID uint16, data []byte) (string, error) {
	enc := nameEncoding(platformID, encodingID)
	if enc == nil {
		return string(data), errors.Wrapf(ErrUnsupportedEncoding, "platform %d encoding %d", platformID, encodingID)
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return string(data), errors.Wrapf(ErrUnsupportedEncoding, "platform %d encoding %d: %v", platformID, encodingID, err)
	}
	return string(decoded), nil
}

// cmapEncoding returns the character code semantics for a cmap subtable with `platformID`,
// `encodingID`.
func cmapEncoding(platformID, encodingID uint16) model.Encoding {
	switch {
	case platformID == platformIDMacintosh:
		return model.EncodingANSI
	case platformID == platformIDWindows && encodingID == windowsShiftJIS:
		return model.EncodingShiftJIS
	}
	return model.EncodingUnicode
}
