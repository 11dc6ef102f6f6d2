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
	"fmt"
	"io"

	"github.com/bgallie/filters/ascii85"
	"github.com/bgallie/filters/flate"
	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [passphrase]",
	Short: "Decode an encoded file.",
	Long: `Decode a file encoded by the rotor machine.  The machine is set back to the
index stored in the file's header and the cipher text is replayed through it.`,
	Run: func(cmd *cobra.Command, args []string) {
		decode(args)
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringVarP(&spin, "spin", "s", "", "rotor offsets to decode from, e.g. \"0,0,0\" (overrides the header)")
}

func decode(args []string) {
	m, _ := initEngine(args)

	fin := getInputFile()
	defer fin.Close()
	bRdr := bufio.NewReader(fin)
	b, err := bRdr.Peek(5)
	checkError(err)

	var h header
	var decIn io.Reader
	if string(b) == "-----" {
		var blck pem.Block
		var pRdr *io.PipeReader
		pRdr, blck = pem.FromPem(bRdr)
		h, err = headerFromPem(blck)
		cobra.CheckErr(err)
		decIn = pRdr
	} else {
		line, err := bRdr.ReadString('\n')
		checkError(err)
		h, err = parseHeader(line)
		cobra.CheckErr(err)
		if h.ASCII85 {
			decIn = ascii85.FromASCII85(lines.CombineLines(bRdr))
		} else {
			decIn = bRdr
		}
	}

	if h.Rotors != m.Rotors() {
		cobra.CheckErr(fmt.Sprintf("The file was encoded with %d rotors, the machine has %d.", h.Rotors, m.Rotors()))
	}
	cobra.CheckErr(m.SetIndex(h.Counter))
	applySpin(m)
	jww.INFO.Printf("Decoding from index %s\n", m.Index())

	if h.Compression {
		decIn = flate.FromFlate(decIn)
	}

	fout := getOutputFile(false, h.FileName)
	defer fout.Close()
	checkError(translate(m, alphabet, cfg.Strict, decIn, fout))
}
