/*
Copyright (C) 2026  The goscm Authors

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

// installBuiltins registers the complete set of required procedures into
// ip's global frame. Each group lives in its own file, named after the
// concern it covers.
func installBuiltins(ip *Interpreter) {
	installNumericBuiltins(ip)
	installListBuiltins(ip)
	installPredicateBuiltins(ip)
	installIOBuiltins(ip)
	installStringBuiltins(ip)
	installDictBuiltins(ip)
	installParserBuiltins(ip)
	installStatsBuiltins(ip)
	installImageBuiltins(ip)
}
