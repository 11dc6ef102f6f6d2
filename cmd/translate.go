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
	"bufio"
	"io"

	"github.com/bgallie/enigma/cryptors/enigma"
	"github.com/friendsofgo/errors"
)

// translate encodes every byte of rdr found in the alphabet and writes the
// result to w.  Other bytes are copied unchanged unless strict is set, in
// which case anything but a line ending is an error.
func translate(m *enigma.Machine, a *Alphabet, strict bool, rdr io.Reader, w io.Writer) error {
	bRdr := bufio.NewReader(rdr)
	bWrtr := bufio.NewWriter(w)

	for {
		b, err := bRdr.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		idx, ok := a.Index(b)
		if !ok {
			if strict && b != '\n' && b != '\r' {
				return errors.Errorf("%q is not in the alphabet", b)
			}
			if err := bWrtr.WriteByte(b); err != nil {
				return err
			}
			continue
		}

		o, err := m.Encode(idx)
		if err != nil {
			return err
		}
		if err := bWrtr.WriteByte(a.Symbol(o)); err != nil {
			return err
		}
	}

	return bWrtr.Flush()
}

// machineReader provides the means to run translate as a stage of a
// filter pipeline.  The output of the machine can be read using the
// returned PipeReader; an error from translate is returned by its Read.
func machineReader(m *enigma.Machine, a *Alphabet, strict bool, rdr io.Reader) *io.PipeReader {
	rRdr, rWrtr := io.Pipe()
	go func() {
		rWrtr.CloseWithError(translate(m, a, strict, rdr, rWrtr))
	}()
	return rRdr
}
