/*
 * files.go, part of gofrag.
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
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//FilePair is a PyFrag input file and the results file produced from it.
type FilePair struct {
	Input   string
	Results string
}

//isResultsFile returns true for names like pyfrag_xxx.txt, optionally compressed.
func isResultsFile(name string) bool {
	if !strings.HasPrefix(name, "pyfrag") {
		return false
	}
	for _, ext := range []string{".txt", ".txt.gz", ".txt.zst"} {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

//pairInDir looks for a pair of files directly in dir. It returns the pair,
//whether it was found, and the number of regular files in dir.
func pairInDir(dir string) (FilePair, bool, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return FilePair{}, false, 0, err
	}
	var p FilePair
	nfiles := 0
	//ReadDir sorts by name, so the last match wins, as with a plain listing.
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		nfiles++
		name := e.Name()
		if strings.HasSuffix(name, ".in") {
			p.Input = filepath.Join(dir, name)
		}
		if isResultsFile(name) {
			p.Results = filepath.Join(dir, name)
		}
	}
	return p, p.Input != "" && p.Results != "", nfiles, nil
}

//PyFragFiles returns, for each of the given directories, the PyFrag input file (*.in)
//and results file (pyfrag*.txt) in it. It fails if any directory lacks either file.
func PyFragFiles(dirs ...string) ([]FilePair, error) {
	if len(dirs) == 0 {
		return nil, fmt.Errorf("PyFragFiles: no directories given: %w", ErrFilesNotFound)
	}
	ret := make([]FilePair, 0, len(dirs))
	for _, d := range dirs {
		p, ok, _, err := pairInDir(d)
		if err != nil {
			return nil, fmt.Errorf("PyFragFiles: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("PyFragFiles: %w in %s", ErrFilesNotFound, d)
		}
		ret = append(ret, p)
	}
	return ret, nil
}

//FindPyFragFiles walks root, and up to two levels of subdirectories under it,
//and returns the pairs of files found. Every directory that contains files must
//contain a pair. It fails if no pair is found at all.
func FindPyFragFiles(root string) ([]FilePair, error) {
	var ret []FilePair
	root = filepath.Clean(root)
	depth0 := strings.Count(root, string(os.PathSeparator))
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.Count(path, string(os.PathSeparator))-depth0 > 2 {
			return fs.SkipDir
		}
		p, ok, nfiles, err := pairInDir(path)
		if err != nil {
			return err
		}
		if nfiles == 0 {
			return nil
		}
		if !ok {
			return fmt.Errorf("%w in %s", ErrFilesNotFound, path)
		}
		ret = append(ret, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("FindPyFragFiles: %w", err)
	}
	if len(ret) == 0 {
		return nil, fmt.Errorf("FindPyFragFiles: %w under %s", ErrFilesNotFound, root)
	}
	return ret, nil
}
