package wplace

import (
	"fmt"
	"image"
	"io"
	"sort"

	"github.com/vslashg/cornmunity-wplace/palette"
)

// Usage is one line of a palette usage tally: a palette entry label and
// the number of pixels that snap to it.
type Usage struct {
	Label string
	Count int
}

// Tally counts how many pixels of img snap to each palette entry,
// most-used first with ties in label order. Paid entries are labelled with
// a leading "$ ".
func (c *Converter) Tally(img image.Image) []Usage {
	src := toNRGBA(img)

	counts := make(map[string]int)
	for y := 0; y < src.Rect.Dy(); y++ {
		for x := 0; x < src.Rect.Dx(); x++ {
			n := src.NRGBAAt(x, y)
			counts[c.pal.NearestEntry(palette.RGBA(n.R, n.G, n.B, n.A)).Label()]++
		}
	}

	usage := make([]Usage, 0, len(counts))
	for label, count := range counts {
		usage = append(usage, Usage{Label: label, Count: count})
	}
	sort.Slice(usage, func(i, j int) bool {
		if usage[i].Count != usage[j].Count {
			return usage[i].Count > usage[j].Count
		}
		return usage[i].Label < usage[j].Label
	})

	return usage
}

// Report writes a usage tally for each named image to w, separating the
// tallies with filename headers when more than one file is given. A
// non-nil catalog archives each tally under the image's content hash.
func (c *Converter) Report(w io.Writer, cat *Catalog, files ...string) error {
	for i, file := range files {
		img, sha, err := hashImage(file)
		if err != nil {
			return err
		}

		if len(files) > 1 {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%s:\n", file); err != nil {
				return err
			}
		}

		usage := c.Tally(img)
		for _, u := range usage {
			if _, err := fmt.Fprintf(w, "%7d  %s\n", u.Count, u.Label); err != nil {
				return err
			}
		}

		if cat != nil {
			if err := cat.SaveReport(sha, file, img.Rect.Dx(), img.Rect.Dy(), usage); err != nil {
				return err
			}
		}
	}

	return nil
}
