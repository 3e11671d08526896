/*
 * load.go, part of gofrag.
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
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//ObjectFromFiles reads the input and results files of p, processes the results
//with opts and returns the resulting object.
func ObjectFromFiles(p FilePair, opts ProcessOptions) (*Object, error) {
	in, err := ReadInputFile(p.Input)
	if err != nil {
		return nil, errDecorate(err, "ObjectFromFiles")
	}
	t, err := ReadData(p.Results)
	if err != nil {
		return nil, errDecorate(err, "ObjectFromFiles")
	}
	rows := t.Len()
	t, err = ProcessResultsFile(t, opts)
	if err != nil {
		return nil, errDecorate(err, "ObjectFromFiles")
	}
	zap.L().Debug("Loaded PyFrag results",
		zap.String("name", in.Name),
		zap.String("results", p.Results),
		zap.Int("rows", rows),
		zap.Int("kept", t.Len()))
	o := NewObject(t, in)
	o.Files = p
	return o, nil
}

//ObjectFromDir finds the PyFrag files in dir and builds an object from them.
func ObjectFromDir(dir string, opts ProcessOptions) (*Object, error) {
	pairs, err := PyFragFiles(dir)
	if err != nil {
		return nil, err
	}
	return ObjectFromFiles(pairs[0], opts)
}

//LoadObjects builds one object per directory, concurrently. The objects are returned
//in the order of dirs. The first error cancels the remaining loads.
func LoadObjects(ctx context.Context, dirs []string, opts ProcessOptions) ([]*Object, error) {
	objs := make([]*Object, len(dirs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, d := range dirs {
		i, d := i, d
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o, err := ObjectFromDir(d, opts)
			if err != nil {
				return fmt.Errorf("loading %s: %w", d, err)
			}
			objs[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return objs, nil
}
