// Copyright (c) 2024-2026 Vocalabs
// Author: Wei Shan <wei@vocalabs.dev>
//
// Licensed under GPL-2.0 with Vocalabs Additional Terms.
// See LICENSE.md or contact sales@vocalabs.dev for commercial usage.

// Package dictionary loads the caller-maintained word lists feeding the
// quotation and pronunciation passes.
package dictionary

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/vocalabs/textprep/textnorm"
)

// ErrInvalid reports a dictionary document that is not the expected shape.
var ErrInvalid = errors.New("invalid dictionary")

// Dictionary carries the word lists consumed by the text preparation passes.
type Dictionary struct {

	// Keywords are wrapped in quotes by the quotation pass.
	Keywords []string

	// Corrections map written readings to speakable ones. Document order is
	// preserved because substitution order is semantic.
	Corrections []textnorm.Substitution
}

// Load reads and parses a dictionary JSON document from path.
func Load(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}
	dict, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dictionary %s: %w", path, err)
	}
	return dict, nil
}

// Parse decodes a dictionary document of the form
//
//	{"keywords": ["北京"], "cacoepy": {"重庆": "虫庆"}}
//
// Both sections are optional. Unknown sections are ignored so dictionaries
// can carry annotations for other tools.
func Parse(data []byte) (*Dictionary, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalid)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level is not an object", ErrInvalid)
	}

	dict := &Dictionary{}

	if keywords := root.Get("keywords"); keywords.Exists() {
		if !keywords.IsArray() {
			return nil, fmt.Errorf("%w: keywords is not an array", ErrInvalid)
		}
		for _, entry := range keywords.Array() {
			if entry.Type != gjson.String {
				return nil, fmt.Errorf("%w: keyword %s is not a string", ErrInvalid, entry.Raw)
			}
			dict.Keywords = append(dict.Keywords, entry.String())
		}
	}

	if corrections := root.Get("cacoepy"); corrections.Exists() {
		if !corrections.IsObject() {
			return nil, fmt.Errorf("%w: cacoepy is not an object", ErrInvalid)
		}
		var badEntry error
		corrections.ForEach(func(key, value gjson.Result) bool {
			if value.Type != gjson.String {
				badEntry = fmt.Errorf("%w: cacoepy entry %s is not a string", ErrInvalid, key.Raw)
				return false
			}
			dict.Corrections = append(dict.Corrections, textnorm.Substitution{
				From: key.String(),
				To:   value.String(),
			})
			return true
		})
		if badEntry != nil {
			return nil, badEntry
		}
	}

	return dict, nil
}
