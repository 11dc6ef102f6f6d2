/*
Copyright © 2021 Billy G. Allie <bill.allie@defiant.mug.org>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/bgallie/filters/pem"
	"github.com/friendsofgo/errors"
)

const (
	headerMagic = "+ENIGMA"
	pemType     = "ENIGMA Encoded Message"
)

// header describes an encoded file: the index the machine started at and how
// the cipher text was stored.
type header struct {
	FileName    string
	ASCII85     bool
	Compression bool
	Counter     *big.Int
	Rotors      int
}

// String returns the header line written before binary and ASCII85 output.
func (h header) String() string {
	enc := "b"
	if h.ASCII85 {
		enc = "a"
	}
	return fmt.Sprintf("%s|%s|%s|%v|%s|%d\n", headerMagic, h.FileName, enc, h.Compression, h.Counter, h.Rotors)
}

func parseHeader(line string) (header, error) {
	var h header
	fields := strings.Split(strings.TrimRight(line, "\r\n"), "|")
	if len(fields) < 6 || fields[0] != headerMagic {
		return h, errors.Errorf("not an enigma header: %q", line)
	}
	// The file name may itself contain '|'; the last four fields are fixed.
	if n := len(fields) - 4; n > 2 {
		fields = append([]string{fields[0], strings.Join(fields[1:n], "|")}, fields[n:]...)
	}

	h.FileName = fields[1]
	switch fields[2] {
	case "a":
		h.ASCII85 = true
	case "b":
	default:
		return h, errors.Errorf("unknown encoding %q", fields[2])
	}
	h.Compression = fields[3] == "true"

	var good bool
	if h.Counter, good = new(big.Int).SetString(fields[4], 10); !good {
		return h, errors.Errorf("bad counter %q", fields[4])
	}
	rotors, err := strconv.Atoi(fields[5])
	if err != nil {
		return h, errors.Wrapf(err, "bad rotor count %q", fields[5])
	}
	h.Rotors = rotors
	return h, nil
}

// pemBlock returns the PEM block that carries h.
func (h header) pemBlock() pem.Block {
	var blck pem.Block
	blck.Type = pemType
	blck.Headers = make(map[string]string)
	blck.Headers["Counter"] = h.Counter.String()
	if len(h.FileName) > 0 {
		blck.Headers["FileName"] = h.FileName
	}
	blck.Headers["Compression"] = fmt.Sprintf("%v", h.Compression)
	blck.Headers["Rotors"] = strconv.Itoa(h.Rotors)
	return blck
}

func headerFromPem(blck pem.Block) (header, error) {
	var h header
	var good bool
	if h.Counter, good = new(big.Int).SetString(blck.Headers["Counter"], 10); !good {
		return h, errors.Errorf("bad counter %q", blck.Headers["Counter"])
	}
	h.FileName = blck.Headers["FileName"]
	h.Compression = blck.Headers["Compression"] == "true"
	rotors, err := strconv.Atoi(blck.Headers["Rotors"])
	if err != nil {
		return h, errors.Wrapf(err, "bad rotor count %q", blck.Headers["Rotors"])
	}
	h.Rotors = rotors
	return h, nil
}
