/*
 * Copyright (c) 2022 The GoPlus Authors (goplus.org). All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cequiv

import (
	"os"
	"path/filepath"

	"github.com/qiniu/x/errors"

	jsoniter "github.com/json-iterator/go"
)

// ProjFile is the name of the project file looked up by VerifyDir.
const ProjFile = "cequiv.cfg"

type cequivIgnore struct {
	Names []string `json:"names"`
}

type cequivConf struct {
	Select   []string     `json:"select"`
	Ignore   cequivIgnore `json:"ignore"`
	Json     bool         `json:"json"`
	FailFast bool         `json:"failfast"`
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadProj reads a cequiv.cfg project file and returns the Config and flags
// it describes.
func LoadProj(projfile string) (conf *Config, flags int, err error) {
	b, err := os.ReadFile(projfile)
	if err != nil {
		err = errors.NewWith(err, `os.ReadFile(projfile)`, -2, "os.ReadFile", projfile)
		return
	}
	var proj cequivConf
	if err = json.Unmarshal(b, &proj); err != nil {
		err = errors.NewWith(err, `json.Unmarshal(b, &proj)`, -2, "json.Unmarshal", b, &proj)
		return
	}
	if proj.Json {
		flags |= FlagDumpJson
	}
	if proj.FailFast {
		flags |= FlagFailFast
	}
	conf = &Config{Select: proj.Select, Ignore: proj.Ignore.Names}
	return
}

// VerifyProj loads projfile and runs Verify with its settings. flags are
// merged with the flags the project file sets; only Output is taken from in.
func VerifyProj(projfile string, flags int, in *Config) error {
	conf, projFlags, err := LoadProj(projfile)
	if err != nil {
		return err
	}
	if in != nil {
		conf.Output = in.Output
	}
	return Verify(flags|projFlags, conf)
}

// VerifyDir runs VerifyProj on dir/cequiv.cfg if it exists, or verifies every
// entry otherwise.
func VerifyDir(dir string, flags int, conf *Config) error {
	projfile := filepath.Join(dir, ProjFile)
	if isFile(projfile) {
		return VerifyProj(projfile, flags, conf)
	}
	return Verify(flags, conf)
}

func isFile(name string) bool {
	if fi, err := os.Lstat(name); err == nil {
		return !fi.IsDir()
	}
	return false
}
