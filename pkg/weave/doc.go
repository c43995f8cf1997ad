// Package weave implements the circuit-weave generation pipeline.
//
// A weave is a two-color ASCII/box-drawing texture on a character grid. The
// pipeline is fully deterministic: one integer seed and a style flag drive
// every stage, and rebuilding with the same inputs reproduces the output
// bit-for-bit.
//
// # Pipeline
//
// Generation runs five stages in order, each consuming the previous stage's
// outputs:
//
//  1. Band partitioner: splits the row range into horizontal bands with
//     randomized weight, drift, and glitch-bias parameters.
//  2. Scalar fields: five [0,1] grids (blend, glitch, vertical gate,
//     horizontal gate, rung) from seeded simplex noise and band parameters.
//  3. Void mask: circular noise-warped islands of negative space.
//  4. Edge resolver: one boolean per shared cell boundary, distributed into
//     per-cell north/east/south/west records. Adjacent cells always observe
//     the same value for their shared edge.
//  5. Glyphizer: maps each cell's edge bitmask to a box-drawing character,
//     with style-specific texture rules.
//
// # Usage
//
//	scene, err := weave.New(weave.Options{Seed: 42, Style: weave.StyleSimple})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, line := range scene.Lines() {
//	    fmt.Println(line)
//	}
//
// The Scene is the single mutable root. Rebuild triggers (Regenerate,
// ToggleStyle, Resize) replace all derived grids wholesale; ToggleMode is
// cosmetic and touches nothing but the mode flag. All methods are
// synchronous and intended for single-goroutine use.
package weave
