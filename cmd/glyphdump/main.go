/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Command glyphdump decodes a TrueType font program and prints its metadata and, optionally, the
// glyphs of a subset of characters.
package main

import (
	"encoding/json"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/unidoc/unisubset/font/hostfont"
	"github.com/unidoc/unisubset/font/model"
	"github.com/unidoc/unisubset/font/render"
	"github.com/unidoc/unisubset/font/truetype"
)

type cli struct {
	Subset   string `short:"s" help:"Characters to keep. All glyphs are kept if empty"`
	Glyphs   bool   `short:"g" help:"Print glyph outlines"`
	JSON     bool   `short:"j" name:"json" help:"Print JSON instead of text"`
	Host     bool   `help:"Load the font through the host font stack instead of the table decoders"`
	NoCmap   bool   `help:"Do not decode the character map"`
	LogLevel string `short:"l" enum:"error,warn,info,debug,trace" default:"warn" help:"Log level"`

	Render string `short:"r" type:"path" help:"Directory to write PNG images of the glyphs to"`
	Size   int    `default:"128" help:"EM square size of rendered glyphs in pixels"`

	Input string `arg:"" name:"input" help:"Path to input font file" type:"existingfile"`
}

func main() {
	var args cli
	kong.Parse(&args, kong.Description("Dump the glyph table of a TrueType font."))

	err := run(os.Stdout, args)
	endIfErr(err)
}

func endIfErr(e error) {
	if e != nil {
		eLog := log.New(os.Stderr, "", 0)
		eLog.Fatalln(e)
	}
}

func run(w io.Writer, args cli) error {
	level, err := logrus.ParseLevel(args.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	data, err := os.ReadFile(args.Input)
	if err != nil {
		return err
	}

	var b model.Builder = truetype.Source{Data: data, Options: truetype.Options{SkipCmap: args.NoCmap}}
	if args.Host {
		b, err = hostfont.NewSource(data)
		if err != nil {
			return err
		}
	}

	fnt, err := b.Build()
	if err != nil {
		return err
	}

	gids := make([]int, fnt.NumGlyphs())
	for i := range gids {
		gids[i] = i
	}
	if args.Subset != "" {
		fnt, gids = fnt.SubsetWithMapping([]rune(args.Subset))
	}

	if args.Render != "" {
		err = renderGlyphs(args.Render, fnt, args.Size)
		if err != nil {
			return err
		}
	}

	if args.JSON {
		return writeJSON(w, fnt, gids, args.Glyphs)
	}
	return writeText(w, fnt, gids, args.Glyphs)
}

// renderGlyphs writes one PNG image per glyph of `fnt` to directory `dir`.
func renderGlyphs(dir string, fnt *model.Font, size int) error {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	for i := range fnt.Glyphs {
		img := render.Glyph(&fnt.Glyphs[i], fnt.Metadata, size)

		f, err := os.Create(filepath.Join(dir, fmt.Sprintf("glyph_%04d.png", i)))
		if err != nil {
			return err
		}
		err = png.Encode(f, img)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}
	logrus.Debugf("Rendered %d glyphs to %s", len(fnt.Glyphs), dir)
	return nil
}

type glyphInfo struct {
	Index    int        `json:"index"`
	Original int        `json:"original"`
	Code     int        `json:"code,omitempty"`
	Advance  int        `json:"advance"`
	Bounds   model.BBox `json:"bounds"`
	Contours int        `json:"contours"`
	Outline  string     `json:"outline,omitempty"`
}

type fontInfo struct {
	Metadata model.Metadata `json:"metadata"`
	Encoding string         `json:"encoding"`
	Codes    int            `json:"codes"`
	Glyphs   []glyphInfo    `json:"glyphs,omitempty"`
}

func describe(fnt *model.Font, gids []int, withGlyphs bool) fontInfo {
	info := fontInfo{
		Metadata: fnt.Metadata,
		Encoding: fnt.CharMap.Encoding.String(),
		Codes:    fnt.CharMap.Len(),
	}
	if !withGlyphs {
		return info
	}
	for i, g := range fnt.Glyphs {
		gi := glyphInfo{
			Index:    i,
			Original: gids[i],
			Advance:  g.Advance,
			Bounds:   g.Bounds,
			Contours: g.Outline.NumContours(),
			Outline:  g.Outline.String(),
		}
		if code, ok := fnt.CharMap.Char(i); ok {
			gi.Code = code
		}
		info.Glyphs = append(info.Glyphs, gi)
	}
	return info
}

func writeJSON(w io.Writer, fnt *model.Font, gids []int, withGlyphs bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(describe(fnt, gids, withGlyphs))
}

func writeText(w io.Writer, fnt *model.Font, gids []int, withGlyphs bool) error {
	info := describe(fnt, gids, withGlyphs)
	md := info.Metadata

	_, err := fmt.Fprintf(w, "Name: %s\nScale: %d\nAscent: %d Descent: %d Leading: %d\n",
		md.Name, md.Scale, md.Ascent, md.Descent, md.Leading)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Bold: %t Italic: %t FixedPitch: %t ItalicAngle: %g\nGlyphs: %d Codes: %d (%s)\n",
		md.Bold, md.Italic, md.FixedPitch, md.ItalicAngle, md.NumGlyphs, info.Codes, info.Encoding)
	if err != nil {
		return err
	}

	for _, gi := range info.Glyphs {
		_, err = fmt.Fprintf(w, "%d (%d) %U advance=%d bounds=%v contours=%d\n\t%s\n",
			gi.Index, gi.Original, rune(gi.Code), gi.Advance, gi.Bounds, gi.Contours, gi.Outline)
		if err != nil {
			return err
		}
	}
	return nil
}
