// Copyright (c) 2024-2026 Vocalabs
// Author: Wei Shan <wei@vocalabs.dev>
//
// Licensed under GPL-2.0 with Vocalabs Additional Terms.
// See LICENSE.md or contact sales@vocalabs.dev for commercial usage.

package textnorm

import (
	"regexp"
	"strconv"

	ntw "moul.io/number-to-words"

	"github.com/vocalabs/textprep/pkg/commons"
)

// =============================================================================
// English Number Normalizer
// =============================================================================

// englishNumberPattern matches standalone one and two digit integers.
// Longer runs stay numeric, reading 2026 as a word salad helps nobody.
var englishNumberPattern = regexp.MustCompile(`\b\d{1,2}\b`)

type englishNumberNormalizer struct {
	logger commons.Logger
}

// NewEnglishNumberNormalizer spells out small integers in non-Mandarin text,
// e.g. "42 items" becomes "forty-two items".
func NewEnglishNumberNormalizer(logger commons.Logger) Normalizer {
	return &englishNumberNormalizer{logger: logger}
}

func (n *englishNumberNormalizer) Normalize(text string) string {
	return englishNumberPattern.ReplaceAllStringFunc(text, func(match string) string {
		value, err := strconv.Atoi(match)
		if err != nil {
			n.logger.Warnf("normalizer: failed to parse number %q: %v", match, err)
			return match
		}
		return ntw.IntegerToEnUs(value)
	})
}
