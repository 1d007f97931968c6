// Package plot lays out function graphs in canvas coordinates.
//
// A Graph maps a data window onto a canvas of fixed size and holds any number
// of registered plots. Canvas points for each plot are computed on first use
// and cached until the scale or the plot set changes. Drawing the points is
// left to the caller.
package plot
