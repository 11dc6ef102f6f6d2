// This is free and unencumbered software released into the public domain.
// See the UNLICENSE file for details.

// Package main - enigma is a rotor cipher machine: a chain of rotating wired
// rotors closed by a reflector, with a plugboard before and after the chain.
// Because the reflector pairs every contact, the same machine set to the
// same rotor offsets both encodes and decodes.
package main

import "github.com/bgallie/enigma/cmd"

func main() {
	cmd.Execute()
}
