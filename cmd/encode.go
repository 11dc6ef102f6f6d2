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
	"io"
	"math/big"
	"path/filepath"

	"github.com/bgallie/filters/ascii85"
	"github.com/bgallie/filters/flate"
	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
)

var (
	useASCII85  bool
	usePem      bool
	compression bool
	cnt         string = "-1"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode [passphrase]",
	Short: "Encode plaintext using the rotor machine",
	Long: `Encode plaintext using the rotor machine keyed by the passphrase.
Bytes of the input that are in the alphabet are encoded, all other bytes
are copied unchanged (or rejected with --strict).`,
	Run: func(cmd *cobra.Command, args []string) {
		encode(args)
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().BoolVarP(&useASCII85, "useASCII85", "a", false, "use ASCII85 encoding")
	encodeCmd.Flags().BoolVarP(&usePem, "usePem", "p", false, "use PEM encoding.")
	encodeCmd.Flags().BoolVarP(&compression, "compress", "c", false, "compress the encoded text using flate")
	encodeCmd.Flags().StringVarP(&cnt, "count", "n", "-1", "initial index (a number or a fraction of the maximal states)")
	encodeCmd.Flags().StringVarP(&spin, "spin", "s", "", "initial rotor offsets, e.g. \"0,0,0\" (overrides the index)")
}

func encode(args []string) {
	m, mKey := initEngine(args)

	var iCnt *big.Int
	if cnt != "-1" {
		var err error
		iCnt, err = parseCount(cnt, m.MaximalStates())
		cobra.CheckErr(err)
	} else {
		iCnt = new(big.Int)
	}

	// Read in the map of counts from the file which holds the counts and get
	// the index to use to encode the file.
	cntrFileName := counterFileName()
	cMap, err := readCounterFile(cntrFileName, make(map[string]*big.Int))
	cobra.CheckErr(err)
	if cMap[mKey] == nil {
		cMap[mKey] = iCnt
	} else {
		iCnt = cMap[mKey]
		if cnt != "-1" {
			jww.WARN.Println("Ignoring the count argument - using the value from the .enigma file.")
		}
	}
	// Now we can set the index of the machine.
	cobra.CheckErr(m.SetIndex(iCnt))
	applySpin(m)

	fin := getInputFile()
	defer fin.Close()
	fout := getOutputFile(true, "")
	defer fout.Close()

	h := header{
		ASCII85:     useASCII85,
		Compression: compression,
		Counter:     m.Index(),
		Rotors:      m.Rotors(),
	}
	if len(inputFileName) > 0 && inputFileName != "-" {
		h.FileName = filepath.Base(inputFileName)
	}

	var encIn io.Reader = machineReader(m, alphabet, cfg.Strict, fin)
	if compression {
		encIn = flate.ToFlate(encIn)
	}

	if usePem {
		_, err = io.Copy(fout, pem.ToPem(encIn, h.pemBlock()))
		checkError(err)
	} else {
		_, err = fout.WriteString(h.String())
		cobra.CheckErr(err)
		if useASCII85 {
			_, err = io.Copy(fout, lines.SplitToLines(ascii85.ToASCII85(encIn)))
		} else {
			_, err = io.Copy(fout, encIn)
		}
		checkError(err)
	}

	jww.INFO.Printf("Encoded from index %s to %s\n", h.Counter, m.Index())
	cMap[mKey] = m.Index()
	cobra.CheckErr(writeCounterFile(cntrFileName, cMap))
}
