// Package weather generates procedural weather for a fictional calendar.
//
// Everything here is a pure function of its inputs and an RNG: a climate
// zone, the calendar's season climate, a preset catalog and a seed. Nothing
// is cached between calls; the caller owns the "current weather" id that
// feeds day-to-day inertia.
package weather
