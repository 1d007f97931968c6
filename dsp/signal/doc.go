// Package signal provides periodic test signals and a registry of named
// signals for the Fourier engine.
package signal
