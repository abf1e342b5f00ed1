// Package calculator holds the pure nutrition arithmetic: daily meal selection,
// nutrient totals and basal metabolic rate.
package calculator
