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
	"encoding/gob"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/enigma"
	"github.com/bgallie/tntengine"
	"github.com/friendsofgo/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	cfgFile          string
	proFormaFileName string
	inputFileName    string
	outputFileName   string
	spin             string
	verbose          bool
	cfg              Config
	alphabet         *Alphabet
	appFs            afero.Fs = afero.NewOsFs()
	GitCommit        string   = "not set"
	BuildDate        string   = "not set"
	Version          string   = "dev"
)

const (
	enigmaCountFile = ".enigma"
	enigmaExt       = ".enigma"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "enigma",
	Short:   "A rotor cipher machine",
	Long:    `enigma encodes and decodes text with a rotor cipher machine keyed by a passphrase.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} {{.Version}} (commit %s, built %s)\n", GitCommit, BuildDate))
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.enigma.yaml)")
	rootCmd.PersistentFlags().StringVarP(&proFormaFileName, "proformafile", "f", "", "the file name containing the proforma machine used to key the rotor wiring.")
	rootCmd.PersistentFlags().StringVarP(&inputFileName, "inputFile", "i", "-", "Name of the file to encode/decode.")
	rootCmd.PersistentFlags().StringVarP(&outputFileName, "outputFile", "o", "", "Name of the file containing the encoded/decoded text.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "report progress on stderr")
	rootCmd.PersistentFlags().String("alphabet", defaultAlphabet, "the symbols on the rotor contacts, in contact order (even length)")
	rootCmd.PersistentFlags().IntP("rotors", "r", cryptors.DefaultRotorCount, "number of rotors")
	rootCmd.PersistentFlags().StringP("plugboard", "b", "", "plugboard pairs of alphabet symbols or contact numbers, e.g. \"bx,ej\" or \"1-23,4-9\"")
	rootCmd.PersistentFlags().Bool("strict", false, "reject input bytes that are not in the alphabet")
	for _, name := range []string{"alphabet", "rotors", "plugboard", "strict"} {
		cobra.CheckErr(viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	jww.SetLogOutput(os.Stderr)
	jww.SetStdoutThreshold(jww.LevelFatal)
	if verbose {
		jww.SetLogThreshold(jww.LevelInfo)
	} else {
		jww.SetLogThreshold(jww.LevelWarn)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".enigma" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".enigma")
	}

	viper.SetEnvPrefix("enigma")
	viper.AutomaticEnv() // read in environment variables that match
	setConfigDefaults(viper.GetViper())

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		jww.INFO.Println("Using config file:", viper.ConfigFileUsed())
	}

	var err error
	cfg, err = loadConfig(viper.GetViper())
	cobra.CheckErr(err)
	alphabet, err = NewAlphabet(cfg.Alphabet, cfg.FoldCase)
	cobra.CheckErr(err)
}

// counterFileName returns the name of the file holding the next index of
// every machine used by the current user.
func counterFileName() string {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	return fmt.Sprintf("%s%c%s", home, os.PathSeparator, enigmaCountFile)
}

func getSecret(args []string) string {
	// Obtain the passphrase used to key the machine from either:
	// 1. User input from the terminal (most secure)
	// 2. The 'ENIGMA_SECRET' environment variable (less secure)
	// 3. Arguments from the entered command line (least secure - not recommended)
	var secret string
	if len(args) == 0 {
		if viper.IsSet("SECRET") {
			secret = viper.GetString("SECRET")
		} else if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintf(os.Stderr, "Enter the passphrase: ")
			byteSecret, err := term.ReadPassword(int(os.Stdin.Fd()))
			cobra.CheckErr(err)
			fmt.Fprintln(os.Stderr, "")
			secret = string(byteSecret)
		}
	} else {
		secret = strings.Join(args, " ")
	}

	if len(secret) == 0 {
		cobra.CheckErr("You must supply a password.")
	}
	return secret
}

// initEngine builds the cipher machine.  The rotors and the reflector are
// wired from a tntengine random number generator keyed with the passphrase,
// so the same passphrase and configuration always build the same machine.
// The returned key identifies the machine in the counter file.
func initEngine(args []string) (*enigma.Machine, string) {
	secret := getSecret(args)

	var tntMachine tntengine.TntEngine
	tntMachine.Init([]byte(secret), proFormaFileName)
	tntMachine.SetEngineType("E")
	tntMachine.BuildCipherMachine()
	rnd := tntengine.NewRand(&tntMachine)

	pb, err := buildPlugboard(alphabet, cfg.Plugboard)
	cobra.CheckErr(err)
	m, err := enigma.New(alphabet.Len(), cfg.Rotors, pb, rnd)
	cobra.CheckErr(err)

	// shutdown the tntengine by processing a CypherBlock with zero value
	// length field.
	var blk tntengine.CypherBlock
	tntMachine.Left() <- blk
	<-tntMachine.Right()

	mKey := fmt.Sprintf("%s|%s|%d|%s", tntMachine.CounterKey(), cfg.Alphabet, cfg.Rotors, pb)
	jww.INFO.Printf("Built a machine with %d contacts and %d rotors (%s states)\n",
		m.Contacts(), m.Rotors(), m.MaximalStates())
	return m, mKey
}

// applySpin sets the rotor offsets given with --spin, if any.
func applySpin(m *enigma.Machine) {
	if len(spin) == 0 {
		return
	}
	offsets, err := parseSpin(spin)
	cobra.CheckErr(err)
	cobra.CheckErr(m.SetSpinStatus(offsets))
	jww.INFO.Printf("Rotor offsets set to %v\n", m.SpinStatus())
}

// getInputFile returns the file named by --inputFile, or stdin.
func getInputFile() *os.File {
	if len(inputFileName) == 0 || inputFileName == "-" {
		return os.Stdin
	}
	fin, err := os.Open(inputFileName)
	cobra.CheckErr(err)
	return fin
}

/*
	getOutputFile will return the output file to use while encoding/decoding
	data.  If an output file name was given, then that file is created.
	Otherwise the name is derived from the input file name (or, when
	decoding, the name stored in the header) and stdout is the fallback.
*/
func getOutputFile(encode bool, storedName string) *os.File {
	var fout *os.File
	var err error

	if len(outputFileName) > 0 {
		if outputFileName == "-" {
			fout = os.Stdout
		} else {
			fout, err = os.Create(outputFileName)
			cobra.CheckErr(err)
		}
	} else if encode {
		if inputFileName == "-" || len(inputFileName) == 0 {
			fout = os.Stdout
		} else {
			outputFileName = inputFileName + enigmaExt
			fout, err = os.Create(outputFileName)
			cobra.CheckErr(err)
		}
	} else if strings.HasSuffix(inputFileName, enigmaExt) {
		outputFileName = strings.TrimSuffix(inputFileName, enigmaExt)
		fout, err = os.Create(outputFileName)
		cobra.CheckErr(err)
	} else if len(storedName) > 0 {
		outputFileName = storedName
		fout, err = os.Create(outputFileName)
		cobra.CheckErr(err)
	} else {
		fout = os.Stdout
	}
	jww.INFO.Printf("Input: [%s] Output: [%s]\n", inputFileName, outputFileName)
	return fout
}

// checkError checks for errors that are not io.EOF and io.ErrUnexpectedEOF.
func checkError(e error) {
	if e != io.EOF && e != io.ErrUnexpectedEOF {
		cobra.CheckErr(e)
	}
}

func readCounterFile(fname string, defaultMap map[string]*big.Int) (map[string]*big.Int, error) {
	f, err := appFs.OpenFile(fname, os.O_RDONLY, 0600)
	if err != nil {
		return defaultMap, nil
	}

	defer f.Close()
	cmap := make(map[string]*big.Int)
	dec := gob.NewDecoder(f)
	if err := dec.Decode(&cmap); err != nil {
		return defaultMap, errors.Wrapf(err, "reading %s", fname)
	}
	return cmap, nil
}

func writeCounterFile(fname string, wMap map[string]*big.Int) error {
	f, err := appFs.OpenFile(fname, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	defer f.Close()
	enc := gob.NewEncoder(f)
	return enc.Encode(wMap)
}
