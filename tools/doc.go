// Package tools contains the built-in health & fitness tool catalog: pure,
// stateless calculators (BMI, TDEE, macros, 1RM, body fat, heart rate zones,
// hydration, progressive overload) and lookups over small embedded tables
// (exercises, nutrition facts, healthy alternatives, meal suggestions).
//
// Every tool takes named JSON-compatible arguments and returns a
// JSON-compatible structured result. Domain guards (such as the hip
// measurement required for the female body fat formula) surface as errors,
// which the dispatcher folds into uniform tool results.
package tools
