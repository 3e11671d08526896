/*
 * results.go, part of gofrag.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package frag

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//compressed wraps a decompressing reader together with the file under it,
//so closing it closes both.
type compressed struct {
	io.ReadCloser
	f *os.File
}

func (c compressed) Close() error {
	c.ReadCloser.Close()
	return c.f.Close()
}

//openResults opens filename for reading, decompressing it on the fly
//if the name ends in .gz or .zst.
func openResults(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		r, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return compressed{r, f}, nil
	case strings.HasSuffix(lower, ".zst"):
		d, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return compressed{d.IOReadCloser(), f}, nil
	}
	return f, nil
}

//ReadData reads a PyFrag results file (plain, gzip or zstd compressed) into a Table.
func ReadData(filename string) (*Table, error) {
	r, err := openResults(filename)
	if err != nil {
		return nil, newProcessingError(fmt.Sprintf("%s %s: %s", UnableToOpen, filename, err), "read_data", "ReadData", err)
	}
	defer r.Close()
	t, err := ReadResults(r)
	return t, errDecorate(err, "ReadData: "+filename)
}

//ReadResults reads a whitespace-separated PyFrag results table from r. The first line is
//the header and the first column is the index (the IRC step). A leading '#' in the
//index name is dropped. A single bondlength, angle or dihedral column is renamed
//with a "_1" suffix, so it can be found the same way as numbered ones.
func ReadResults(r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var header []string
	var index []float64
	var cols [][]float64
	lineno := 0
	for scanner.Scan() {
		lineno++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if header == nil {
			header = fields
			cols = make([][]float64, len(header)-1)
			continue
		}
		if len(fields) != len(header) {
			return nil, newProcessingError(fmt.Sprintf("%s %d: %d fields, header has %d", MalformedLine, lineno, len(fields), len(header)), "read_data", "ReadResults")
		}
		for i, v := range fields {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, newProcessingError(fmt.Sprintf("%s %d: %s", MalformedLine, lineno, err), "read_data", "ReadResults", err)
			}
			if i == 0 {
				index = append(index, f)
				continue
			}
			cols[i-1] = append(cols[i-1], f)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, newProcessingError(err.Error(), "read_data", "ReadResults", err)
	}
	if header == nil {
		return nil, newProcessingError("Empty results file", "read_data", "ReadResults")
	}
	t, err := NewTable(strings.TrimPrefix(header[0], "#"), index, header[1:], cols)
	if err != nil {
		return nil, errDecorate(err, "ReadResults")
	}
	for _, k := range []Keyword{BondlengthKey, AngleKey, DihedralKey} {
		name := k.String()
		if t.Has(name) && len(t.ColumnsWithPrefix(name+"_")) == 0 {
			t = t.Rename(name, name+"_1")
		}
	}
	return t, nil
}
