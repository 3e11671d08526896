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

package config

import (
	"fmt"

	frag "github.com/rmera/gofrag"
)

var _ frag.Error = (*ConfigError)(nil)

//ConfigError is returned when an option can't be read from the configuration.
type ConfigError struct {
	message string
	Section string
	Option  string
	deco    []string
}

func newError(section, option, message, caller string) *ConfigError {
	return &ConfigError{message: message, Section: section, Option: option, deco: []string{caller}}
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("Error in %s. %s", err.Section, err.message)
}

//Decorate adds deco to the error's call trace and returns the trace.
func (err *ConfigError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
