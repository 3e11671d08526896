/*
 * config.go, part of gofrag.
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

//Package config reads the INI files that control how PyFrag results are processed and plotted.
//The built-in defaults are always read first, and user files, if given, override them.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	frag "github.com/rmera/gofrag"
)

//go:embed config.ini
var defaults []byte

//Section names.
const (
	Shared = "SHARED"
	EDA    = "EDA"
	ASM    = "ASM"
	Figure = "FIGURE"
	//files written for the old plotter use this name for the figure section.
	legacyFigure = "MATPLOTLIB"
)

type kind int

const (
	kindString kind = iota
	kindStrings
	kindFloat
	kindFloats
	kindInt
	kindBool
	kindAny
)

func (k kind) String() string {
	return [...]string{"a string", "a list of strings", "a number", "a list of numbers", "an integer", "a boolean", "a value"}[k]
}

//options maps every valid option, lower case, to the type of its value.
var options = map[string]kind{
	"irc_coord":         kindString,
	"irc_coord_label":   kindString,
	"x_lim":             kindFloats,
	"y_lim":             kindFloats,
	"colours":           kindStrings,
	"line_styles":       kindStrings,
	"outlier_threshold": kindFloat,
	"plot_until":        kindAny,
	"vline":             kindFloat,
	"trim_key":          kindString,
	"reverse_x_axis":    kindBool,
	"stat_point_type":   kindString,
	"eda_keys":          kindStrings,
	"asm_keys":          kindStrings,
	"asm_strain_keys":   kindStrings,
	"fig_size":          kindFloats,
	"font":              kindString,
	"font_size":         kindInt,
	"dpi":               kindInt,
	"format":            kindString,
}

var listSplitter = regexp.MustCompile(`\s*,\s*|\s+`)

//Options returns the names of all valid options, sorted.
func Options() []string {
	ret := make([]string, 0, len(options))
	for k := range options {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

//Config gives typed access to the configuration.
type Config struct {
	file *ini.File
}

func loadOptions() ini.LoadOptions {
	return ini.LoadOptions{
		InsensitiveKeys:     true,
		IgnoreInlineComment: true, //colours can be given as #rrggbb
	}
}

//Load reads the built-in defaults and then each of the user files, in order. Values in
//later files override earlier ones.
func Load(userFiles ...string) (*Config, error) {
	others := make([]interface{}, 0, len(userFiles))
	for _, f := range userFiles {
		others = append(others, f)
	}
	f, err := ini.LoadSources(loadOptions(), defaults, others...)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	c := &Config{file: f}
	if err := c.mergeLegacy(); err != nil {
		return nil, err
	}
	return c, nil
}

//Default returns the built-in configuration.
func Default() *Config {
	c, err := Load()
	if err != nil {
		panic("gofrag/config: built-in configuration can't be parsed: " + err.Error())
	}
	return c
}

//mergeLegacy copies the options of a MATPLOTLIB section, if any, into the FIGURE section.
func (c *Config) mergeLegacy() error {
	old, err := c.file.GetSection(legacyFigure)
	if err != nil {
		return nil
	}
	fig, err := c.file.GetSection(Figure)
	if err != nil {
		fig, err = c.file.NewSection(Figure)
		if err != nil {
			return err
		}
	}
	for _, k := range old.Keys() {
		fig.Key(k.Name()).SetValue(k.Value())
	}
	return nil
}

//Sections returns the names of the sections present in the configuration.
func (c *Config) Sections() []string {
	var ret []string
	for _, s := range c.file.SectionStrings() {
		if s != ini.DefaultSection {
			ret = append(ret, s)
		}
	}
	return ret
}

//raw checks that option is valid and present in section, and returns its value, trimmed.
func (c *Config) raw(section, option, caller string) (string, kind, error) {
	if c == nil || c.file == nil {
		return "", 0, newError(section, option, "The configuration has not been loaded", caller)
	}
	k, ok := options[strings.ToLower(option)]
	if !ok {
		return "", 0, newError(section, option, fmt.Sprintf("Option '%s' is not a valid option. Valid options are %v. Please check the config file", option, Options()), caller)
	}
	sec, err := c.file.GetSection(section)
	if err != nil {
		return "", 0, newError(section, option, fmt.Sprintf("Section '%s' is not a valid section. Note that sections are case sensitive", section), caller)
	}
	if !sec.HasKey(strings.ToLower(option)) {
		return "", 0, newError(section, option, fmt.Sprintf("Option '%s' not found in section '%s'", option, section), caller)
	}
	return strings.TrimSpace(sec.Key(strings.ToLower(option)).String()), k, nil
}

//Get returns the value of option in section, with the type that corresponds to the option:
//string, []string, float64, []float64, int, bool. Options that accept any value
//(plot_until) are returned as int if possible, then as float64 and otherwise as string.
func (c *Config) Get(section, option string) (any, error) {
	v, k, err := c.raw(section, option, "Get")
	if err != nil {
		return nil, err
	}
	badValue := func(err error) error {
		return newError(section, option, fmt.Sprintf("Value '%s' is not %s: %s", v, k, err), "Get")
	}
	switch k {
	case kindString:
		return v, nil
	case kindStrings:
		return splitList(v), nil
	case kindFloat:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, badValue(err)
		}
		return f, nil
	case kindFloats:
		l := splitList(v)
		ret := make([]float64, 0, len(l))
		for _, s := range l {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, badValue(err)
			}
			ret = append(ret, f)
		}
		return ret, nil
	case kindInt:
		i, err := strconv.Atoi(v)
		if err != nil {
			return nil, badValue(err)
		}
		return i, nil
	case kindBool:
		b, err := parseBool(v)
		if err != nil {
			return nil, badValue(err)
		}
		return b, nil
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f, nil
	}
	return v, nil
}

func splitList(v string) []string {
	var ret []string
	for _, s := range listSplitter.Split(v, -1) {
		if s != "" {
			ret = append(ret, s)
		}
	}
	return ret
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "1", "yes", "true", "on":
		return true, nil
	case "0", "no", "false", "off":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean")
}

func typed[T any](c *Config, section, option, caller string) (T, error) {
	var zero T
	v, err := c.Get(section, option)
	if err != nil {
		var cerr *ConfigError
		if errors.As(err, &cerr) {
			cerr.Decorate(caller)
		}
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, newError(section, option, fmt.Sprintf("Option holds %T, not %T", v, zero), caller)
	}
	return t, nil
}

//String returns a string option.
func (c *Config) String(section, option string) (string, error) {
	return typed[string](c, section, option, "String")
}

//Strings returns a list option. Items can be separated by commas and/or spaces.
func (c *Config) Strings(section, option string) ([]string, error) {
	return typed[[]string](c, section, option, "Strings")
}

//Float returns a numeric option.
func (c *Config) Float(section, option string) (float64, error) {
	return typed[float64](c, section, option, "Float")
}

//Floats returns a list of numbers. An empty value gives an empty list.
func (c *Config) Floats(section, option string) ([]float64, error) {
	return typed[[]float64](c, section, option, "Floats")
}

//Int returns an integer option.
func (c *Config) Int(section, option string) (int, error) {
	return typed[int](c, section, option, "Int")
}

//Bool returns a boolean option. 1, yes, true and on are true; 0, no, false and off, false.
func (c *Config) Bool(section, option string) (bool, error) {
	return typed[bool](c, section, option, "Bool")
}

//Set changes the value of option in section, creating the section if needed.
//The value is checked by reading it back.
func (c *Config) Set(section, option, value string) error {
	if c == nil || c.file == nil {
		return newError(section, option, "The configuration has not been loaded", "Set")
	}
	if _, ok := options[strings.ToLower(option)]; !ok {
		return newError(section, option, fmt.Sprintf("Option '%s' is not a valid option. Valid options are %v", option, Options()), "Set")
	}
	sec, err := c.file.GetSection(section)
	if err != nil {
		if sec, err = c.file.NewSection(section); err != nil {
			return newError(section, option, err.Error(), "Set")
		}
	}
	k := sec.Key(strings.ToLower(option))
	old := k.Value()
	k.SetValue(value)
	if _, err := c.Get(section, option); err != nil {
		k.SetValue(old)
		return err
	}
	return nil
}

//WriteTo writes the configuration, in INI format, to w.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	return c.file.WriteTo(w)
}

//ProcessOptions returns the options for frag.ProcessResultsFile given in the SHARED section.
func (c *Config) ProcessOptions() (frag.ProcessOptions, error) {
	var opts frag.ProcessOptions
	key, err := c.String(Shared, "trim_key")
	if err != nil {
		return opts, err
	}
	until, _, err := c.raw(Shared, "plot_until", "ProcessOptions")
	if err != nil {
		return opts, err
	}
	threshold, err := c.Float(Shared, "outlier_threshold")
	if err != nil {
		return opts, err
	}
	opts.TrimKey = key
	opts.TrimParameter = frag.ParseTrimParameter(until)
	opts.OutlierThreshold = threshold
	return opts, nil
}
