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
	"math/big"
	"reflect"
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/plugboard"
	"github.com/friendsofgo/errors"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Config describes the machine to build.  It is read from the config file,
// ENIGMA_* environment variables and the command line flags.
type Config struct {
	Alphabet  string   `mapstructure:"alphabet"`
	Rotors    int      `mapstructure:"rotors"`
	Plugboard []string `mapstructure:"plugboard"`
	FoldCase  bool     `mapstructure:"foldcase"`
	Strict    bool     `mapstructure:"strict"`
}

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("alphabet", defaultAlphabet)
	v.SetDefault("rotors", cryptors.DefaultRotorCount)
	v.SetDefault("plugboard", []string{})
	v.SetDefault("foldcase", true)
	v.SetDefault("strict", false)
}

// splitListHook lets a list be given as one string, "bx,ej" or "bx ej", as
// it is when it comes from a flag or an environment variable.
func splitListHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf([]string{}) {
		return data, nil
	}
	return strings.FieldsFunc(reflect.ValueOf(data).String(), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	}), nil
}

// loadConfig decodes the machine configuration held by v.
func loadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.DecodeHookFuncType(splitListHook),
	)))
	if err != nil {
		return cfg, errors.Wrap(err, "decoding configuration")
	}
	if cfg.Rotors < 0 {
		return cfg, errors.Errorf("rotor count %d is negative", cfg.Rotors)
	}
	return cfg, nil
}

// buildPlugboard converts pairs of alphabet symbols such as "bx" or "b-x" to
// a plugboard.  A pair that is not two alphabet symbols may be given by
// contact number instead, e.g. "1-23".
func buildPlugboard(a *Alphabet, pairs []string) (*plugboard.Plugboard, error) {
	plugs := make([]plugboard.Pair, 0, len(pairs))
	for _, s := range pairs {
		if p, ok := symbolPair(a, s); ok {
			plugs = append(plugs, p)
			continue
		}
		pb, err := plugboard.ParsePairs(s)
		if err != nil {
			return nil, errors.Wrapf(err, "plugboard pair %q is neither two alphabet symbols nor two contacts", s)
		}
		plugs = append(plugs, pb.Pairs()...)
	}
	return plugboard.New(plugs...)
}

func symbolPair(a *Alphabet, s string) (plugboard.Pair, bool) {
	s = strings.Replace(s, "-", "", 1)
	if len(s) != 2 {
		return plugboard.Pair{}, false
	}
	x, okx := a.Index(s[0])
	y, oky := a.Index(s[1])
	return plugboard.Pair{A: x, B: y}, okx && oky
}

// parseSpin parses a comma separated list of rotor offsets such as "0,12,3".
func parseSpin(s string) ([]int, error) {
	flds := strings.Split(s, ",")
	spin := make([]int, len(flds))
	for i, f := range flds {
		v, err := cast.ToIntE(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "rotor offset %q", f)
		}
		spin[i] = v
	}
	return spin, nil
}

// parseCount gets the starting index.  cnt can be a number or a fraction such
// as "1/2", "2/3", or "3/4".  If it is a fraction, then the starting index
// is calculated by multiplying the maximal states of the machine by the
// fraction.
func parseCount(cnt string, maximalStates *big.Int) (*big.Int, error) {
	flds := strings.Split(cnt, "/")
	switch len(flds) {
	case 1:
		iCnt, good := new(big.Int).SetString(cnt, 10)
		if !good {
			return nil, errors.Errorf("failed converting the count to a big.Int: [%s]", cnt)
		}
		return iCnt, nil
	case 2:
		m := new(big.Int).Set(maximalStates)
		a, good := new(big.Int).SetString(flds[0], 10)
		if !good {
			return nil, errors.Errorf("failed converting the numerator to a big.Int: [%s]", flds[0])
		}
		b, good := new(big.Int).SetString(flds[1], 10)
		if !good || b.Sign() == 0 {
			return nil, errors.Errorf("failed converting the denominator to a big.Int: [%s]", flds[1])
		}
		return m.Div(m.Mul(m, a), b), nil
	default:
		return nil, errors.Errorf("incorrect initial count: [%s]", cnt)
	}
}
