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

// Package cequiv verifies the Go counterparts of the C examples against their
// documented properties. The examples themselves live in the arith, memref,
// control, indirect, aggregate and generic packages.
package cequiv

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goplus/cequiv/catalog"
	"github.com/qiniu/x/errors"
)

const (
	FlagFailFast = 1 << iota
	FlagDumpJson
)

const (
	DbgFlagVerify = 1 << iota
	DbgFlagAll    = DbgFlagVerify
)

var (
	debugVerify bool
)

func SetDebug(flags int) {
	debugVerify = (flags & DbgFlagVerify) != 0
}

var (
	ErrUnknownEntry = errors.New("unknown entry")
)

type Config struct {
	Select []string  // entries to verify; empty means all
	Ignore []string  // entries to skip
	Output io.Writer // catalog JSON goes here with FlagDumpJson; default: os.Stdout
}

// -----------------------------------------------------------------------------

// Verify runs the self check of every selected catalog entry and returns the
// failures as an errors.List. With FlagFailFast it stops at the first failure
// and does not recover panics raised by a check.
func Verify(flags int, conf *Config) error {
	entries, err := selectEntries(conf)
	if err != nil {
		return err
	}
	if (flags & FlagDumpJson) != 0 {
		var out io.Writer = os.Stdout
		if conf != nil && conf.Output != nil {
			out = conf.Output
		}
		if err = catalog.Dump(out, entries); err != nil {
			return errors.NewWith(err, `catalog.Dump(out, entries)`, -2, "catalog.Dump", out, entries)
		}
	}
	return verifyEntries(entries, flags)
}

func selectEntries(conf *Config) (entries []*catalog.Entry, err error) {
	if conf == nil || len(conf.Select) == 0 {
		entries = catalog.All()
	} else {
		for _, name := range conf.Select {
			e, ok := catalog.Lookup(name)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownEntry, name)
			}
			entries = append(entries, e)
		}
	}
	if conf == nil || len(conf.Ignore) == 0 {
		return
	}
	ignore := make(map[string]bool, len(conf.Ignore))
	for _, name := range conf.Ignore {
		ignore[name] = true
	}
	n := 0
	for _, e := range entries {
		if !ignore[e.Name] {
			entries[n] = e
			n++
		}
	}
	return entries[:n], nil
}

func verifyEntries(entries []*catalog.Entry, flags int) error {
	var errs errors.List
	for _, e := range entries {
		if err := verifyEntry(e, flags); err != nil {
			errs.Add(err)
			if (flags & FlagFailFast) != 0 {
				break
			}
		}
	}
	return errs.ToError()
}

func verifyEntry(e *catalog.Entry, flags int) (err error) {
	if debugVerify {
		log.Println("==> Verifying", e.Name, "...")
	}
	if (flags & FlagFailFast) == 0 {
		defer func() {
			if r := recover(); r != nil {
				err = newError(e.Name, r)
			}
		}()
	}
	if err = e.Check(); err != nil {
		err = errors.NewWith(err, `e.Check()`, -2, "catalog.Entry.Check", e.Name)
		if debugVerify {
			log.Println("==> FAIL", e.Name, "-", err)
		}
	}
	return
}

func newError(name string, v interface{}) error {
	switch e := v.(type) {
	case error:
		return fmt.Errorf("%s: panic: %w", name, e)
	case string:
		return fmt.Errorf("%s: panic: %s", name, e)
	}
	return fmt.Errorf("%s: panic: %v", name, v)
}

// -----------------------------------------------------------------------------
