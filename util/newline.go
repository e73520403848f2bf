package util

import (
	"io"

	"golang.org/x/text/transform"
)

// UniversalNewlines rewrites "\r\n" and lone "\r" line endings to "\n"
type UniversalNewlines struct {
	transform.NopResetter
}

func (UniversalNewlines) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		consumed := 1
		if c == '\r' {
			// need the next byte to tell "\r\n" from a lone "\r"
			if nSrc+1 == len(src) && !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			c = '\n'
			if nSrc+1 < len(src) && src[nSrc+1] == '\n' {
				consumed = 2
			}
		}
		if nDst == len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = c
		nDst++
		nSrc += consumed
	}
	return nDst, nSrc, nil
}

func NewUniversalNewlineReader(r io.Reader) io.Reader {
	return transform.NewReader(r, UniversalNewlines{})
}
