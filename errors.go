/*
 * errors.go, part of gofrag.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package frag

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

//Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
//error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the name of the caller (plus, optionally, ": extra info") and returns the decorations so far. An empty string only returns the current value.
}

//Sentinel errors, usable with errors.Is.
var (
	ErrFilesNotFound   = errors.New("could not find pyfrag input file or pyfrag txt file")
	ErrNoPyFragSection = errors.New("no PyFrag section found in the input file")
)

//Messages for the errors in this package.
const (
	UnableToOpen      = "Unable to open file"
	WrongFieldCount   = "Wrong number of fields"
	NotAnAtomIndex    = "Atom indices must be integers"
	MissingKey        = "Key not found in the results table"
	WrongPeakType     = "Valid options are [min max]"
	MalformedLine     = "Malformed line in the results file"
	NotEnoughPoints   = "Not enough points in the results table"
	OutOfRange        = "Desired coordinate out of range"
	VDDSpacing        = "Make sure to specify the vdd charges with spaces in between the indices"
	OverlapFragments  = "Overlap fragments must be specified as frag1 and frag2"
	UnknownProperty   = "Unknown property kind"
	DifferentLengths  = "Columns have different lengths"
)

func decorate(deco []string, d string) []string {
	if d != "" {
		deco = append(deco, d)
	}
	return deco
}

//errDecorate decorates err with the caller's name, if err implements Error,
//and returns it. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

//InputError is returned when a line of a PyFrag input file can't be used.
type InputError struct {
	message  string
	Key      string //the keyword with problems
	filename string
	deco     []string
	err      error
}

func newInputError(message, key, filename, caller string, wrapped ...error) *InputError {
	e := &InputError{message: message, Key: key, filename: filename, deco: []string{caller}}
	if len(wrapped) > 0 {
		e.err = wrapped[0]
	}
	return e
}

func (err *InputError) Error() string {
	s := fmt.Sprintf("%s is not valid. %s", err.Key, err.message)
	if err.filename != "" {
		s = fmt.Sprintf("%s (file %s)", s, err.filename)
	}
	return s
}

//Decorate adds deco to the error's call trace and returns the trace.
func (err *InputError) Decorate(deco string) []string {
	err.deco = decorate(err.deco, deco)
	return err.deco
}

//FileName returns the name of the problematic input file, if any.
func (err *InputError) FileName() string { return err.filename }

func (err *InputError) Unwrap() error { return err.err }

//ResultsProcessingError is returned when a results table can't be read or processed.
type ResultsProcessingError struct {
	message string
	Section string //the processing step that failed
	deco    []string
	err     error
}

func newProcessingError(message, section, caller string, wrapped ...error) *ResultsProcessingError {
	e := &ResultsProcessingError{message: message, Section: section, deco: []string{caller}}
	if len(wrapped) > 0 {
		e.err = wrapped[0]
	}
	return e
}

func (err *ResultsProcessingError) Error() string {
	return fmt.Sprintf("Error in %s. %s", err.Section, err.message)
}

func (err *ResultsProcessingError) Decorate(deco string) []string {
	err.deco = decorate(err.deco, deco)
	return err.deco
}

func (err *ResultsProcessingError) Unwrap() error { return err.err }

//ResultsObjectError is returned when a results object is asked for something it doesn't have.
type ResultsObjectError struct {
	message string
	deco    []string
}

func newObjectError(message, caller string) *ResultsObjectError {
	return &ResultsObjectError{message: message, deco: []string{caller}}
}

func (err *ResultsObjectError) Error() string { return err.message }

func (err *ResultsObjectError) Decorate(deco string) []string {
	err.deco = decorate(err.deco, deco)
	return err.deco
}

//ProcessingWarning describes a recoverable problem found while processing
//a results table. Warnings are logged, not returned.
type ProcessingWarning struct {
	Message string
	Section string
}

func (w ProcessingWarning) String() string {
	return fmt.Sprintf("Warning in %s. %s", w.Section, w.Message)
}

//warn logs w through the global zap logger.
func warn(w ProcessingWarning) {
	zap.L().Warn(w.Message, zap.String("section", w.Section))
}

//Trace returns the decorations of err, joined by " <- ", or an empty
//string if err is not an Error.
func Trace(err error) string {
	var e Error
	if !errors.As(err, &e) {
		return ""
	}
	return strings.Join(e.Decorate(""), " <- ")
}
