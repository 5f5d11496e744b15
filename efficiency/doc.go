// SPDX-License-Identifier: MIT

// Package efficiency grades specific fuel oil consumption (SFOC, g/kWh)
// into four tiers. Lower SFOC is better.
//
//	SFOC < 170          Excellent
//	170 ≤ SFOC < 190    Good
//	190 ≤ SFOC < 210    Medium
//	SFOC ≥ 210          Poor
//
// Each boundary belongs to the worse tier: exactly 170 grades Good.
package efficiency
