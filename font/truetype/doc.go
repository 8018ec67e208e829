/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package truetype decodes truetype font programs into a glyph model suitable for embedding a
// subset of the glyphs into another document format. It reads the table directory, the metadata,
// metrics and character map tables and reconstructs quadratic outlines of simple and composite
// glyphs in the coordinate space of the target container (EM square of 1024 units, Y axis down).
package truetype
