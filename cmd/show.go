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
	"io"
	"os"

	"github.com/bgallie/enigma/cryptors/enigma"
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [passphrase]",
	Short: "Show the wiring of the machine built from a passphrase.",
	Run: func(cmd *cobra.Command, args []string) {
		m, _ := initEngine(args)
		cobra.CheckErr(showMachine(os.Stdout, m))
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func showMachine(w io.Writer, m *enigma.Machine) error {
	_, err := fmt.Fprintf(w, "Contacts: %d\nRotors: %d\nMaximal states: %s\nPlugboard: %s\n",
		m.Contacts(), m.Rotors(), m.MaximalStates(), m.Plugboard())
	if err != nil {
		return err
	}
	for i, r := range m.Chain().Rotors() {
		if _, err := fmt.Fprintf(w, "Rotor %d: %s\n", i, r); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "Reflector: %s\n", m.Chain().Reflector())
	return err
}
