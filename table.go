/*
 * table.go, part of gofrag.
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
	"strings"
)

//Table is a column-oriented numeric table, such as the one PyFrag writes, with one
//row per IRC step. The index holds the step numbers. Methods that change the
//table return a new one, the receiver is never modified.
type Table struct {
	IndexName string
	index     []float64
	names     []string
	cols      map[string][]float64
}

//NewTable builds a table from the index values, the column names and the columns,
//which must all have the same length as the index.
func NewTable(indexName string, index []float64, names []string, cols [][]float64) (*Table, error) {
	if len(names) != len(cols) {
		return nil, newProcessingError(fmt.Sprintf("%d names for %d columns", len(names), len(cols)), "NewTable", "NewTable")
	}
	t := &Table{IndexName: indexName, index: index, cols: make(map[string][]float64, len(cols))}
	for i, name := range names {
		if len(cols[i]) != len(index) {
			return nil, newProcessingError(fmt.Sprintf("%s: column %s", DifferentLengths, name), "NewTable", "NewTable")
		}
		if _, ok := t.cols[name]; ok {
			return nil, newProcessingError(fmt.Sprintf("Duplicated column %s", name), "NewTable", "NewTable")
		}
		t.names = append(t.names, name)
		t.cols[name] = cols[i]
	}
	return t, nil
}

//Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.index)
}

//Columns returns the column names, in order.
func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.names...)
}

//Has returns true if the table has a column called name.
func (t *Table) Has(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.cols[name]
	return ok
}

//Column returns a copy of the column name.
func (t *Table) Column(name string) ([]float64, error) {
	if t == nil {
		return nil, newProcessingError(fmt.Sprintf("%s: %s", MissingKey, name), "Column", "Column")
	}
	c, ok := t.cols[name]
	if !ok {
		return nil, newProcessingError(fmt.Sprintf("%s: %s", MissingKey, name), "Column", "Column")
	}
	return append([]float64(nil), c...), nil
}

//Index returns a copy of the index values.
func (t *Table) Index() []float64 {
	if t == nil {
		return nil
	}
	return append([]float64(nil), t.index...)
}

//Row returns the values of row i, by column name.
func (t *Table) Row(i int) map[string]float64 {
	ret := make(map[string]float64, len(t.names))
	for _, n := range t.names {
		ret[n] = t.cols[n][i]
	}
	return ret
}

//Copy returns a deep copy of the table.
func (t *Table) Copy() *Table {
	return t.rows(func(int) bool { return true })
}

//Head returns a table with the first n rows (all of them if n is larger than the length).
func (t *Table) Head(n int) *Table {
	return t.rows(func(i int) bool { return i < n })
}

//DeleteRow returns a table without row i.
func (t *Table) DeleteRow(i int) *Table {
	return t.rows(func(j int) bool { return j != i })
}

//Drop returns a table without the column name. Dropping a column
//that doesn't exist returns an unchanged copy.
func (t *Table) Drop(name string) *Table {
	r := &Table{IndexName: t.IndexName, index: append([]float64(nil), t.index...), cols: make(map[string][]float64, len(t.cols))}
	for _, n := range t.names {
		if n == name {
			continue
		}
		r.names = append(r.names, n)
		r.cols[n] = append([]float64(nil), t.cols[n]...)
	}
	return r
}

//Rename returns a table where the column old is called new. If old doesn't
//exist, or new does, the copy is unchanged.
func (t *Table) Rename(old, new string) *Table {
	r := t.Copy()
	if !r.Has(old) || r.Has(new) {
		return r
	}
	for i, n := range r.names {
		if n == old {
			r.names[i] = new
		}
	}
	r.cols[new] = r.cols[old]
	delete(r.cols, old)
	return r
}

//ColumnsWithPrefix returns the names of the columns that start with prefix, in order.
func (t *Table) ColumnsWithPrefix(prefix string) []string {
	var ret []string
	for _, n := range t.names {
		if strings.HasPrefix(n, prefix) {
			ret = append(ret, n)
		}
	}
	return ret
}

//rows returns a copy of the table with only the rows for which keep returns true.
func (t *Table) rows(keep func(int) bool) *Table {
	r := &Table{IndexName: t.IndexName, names: append([]string(nil), t.names...), cols: make(map[string][]float64, len(t.cols))}
	for i, v := range t.index {
		if keep(i) {
			r.index = append(r.index, v)
		}
	}
	for _, n := range t.names {
		c := make([]float64, 0, len(r.index))
		for i, v := range t.cols[n] {
			if keep(i) {
				c = append(c, v)
			}
		}
		r.cols[n] = c
	}
	return r
}
