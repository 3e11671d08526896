/*
 * doc.go, part of gofrag.
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

/*Package frag is the main package of gofrag. It reads the input and results files
of PyFrag calculations (activation strain model and energy decomposition analyses
along a reaction path) and turns them into tables that can be processed, plotted
and interpolated.



	**gofrag Capabilities**


    Reads PyFrag input files, recovering the properties (overlaps, populations,
	orbital energies, VDD charges, irreps) requested in them, with the labels
	that will be used in plots.

    Reads PyFrag results files (plain or gzip/zstd compressed) into tables,
	numbering a lone bondlength, angle or dihedral column (bondlength_1...).

    Processes the tables: removes outliers, trims the path at a stationary point, an
	energy or a number of points, and drops the dispersion term when it is zero
	everywhere.

    Finds PyFrag file pairs in a directory tree and loads several systems concurrently.

    Locates the stationary points of the energy, and computes orbital energy gaps and
	stabilization (S²/Δε) terms.

    Writes a summary of the systems analysed.

    The subpackages fragplot, interpolate and overview draw the figures, interpolate
	all the terms at a point of the reaction coordinate and draw quick overview charts,
	respectively. The config package reads the INI settings files, and cmd/gofrag
	puts it all together in a command line program.


Errors returned by gofrag packages implement the frag.Error interface, which allows
a trace of the functions the error went through to be recovered (see Trace).
Non-fatal problems are logged, as warnings, through the global zap logger.*/
package frag
