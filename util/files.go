package util

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
)

// FileDigest identifies an input file in run logs
type FileDigest struct {
	Name  string
	Size  int64
	MD5   string
	Lines int
}

func (d *FileDigest) String() string {
	return fmt.Sprintf("%s (%d bytes, %d lines, md5 %s)", d.Name, d.Size, d.Lines, d.MD5)
}

type lineCounter struct {
	lines   int
	lastEOL bool
}

func (c *lineCounter) Write(p []byte) (int, error) {
	for _, b := range p {
		if b == '\n' {
			c.lines++
		}
	}
	if len(p) > 0 {
		c.lastEOL = p[len(p)-1] == '\n'
	}
	return len(p), nil
}

func DigestFile(fileName string) (*FileDigest, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	hash := md5.New()
	counter := &lineCounter{lastEOL: true}
	size, err := io.Copy(io.MultiWriter(hash, counter), file)
	if err != nil {
		return nil, err
	}
	lines := counter.lines
	// unterminated last line
	if !counter.lastEOL {
		lines++
	}
	return &FileDigest{
		Name:  fileName,
		Size:  size,
		MD5:   fmt.Sprintf("%x", hash.Sum(nil)),
		Lines: lines,
	}, nil
}
