// Copyright (c) 2024-2026 Vocalabs
// Author: Wei Shan <wei@vocalabs.dev>
//
// Licensed under GPL-2.0 with Vocalabs Additional Terms.
// See LICENSE.md or contact sales@vocalabs.dev for commercial usage.

package textnorm

import (
	"strings"

	"github.com/vocalabs/textprep/pkg/commons"
)

// =============================================================================
// Symbol Normalizer
// =============================================================================

type symbolNormalizer struct {
	logger   commons.Logger
	replacer *strings.Replacer
}

// NewSymbolNormalizer spells out the math symbols the earlier passes left
// behind. It runs last, so a hyphen here is a dash between words rather than
// a minus sign.
func NewSymbolNormalizer(logger commons.Logger) Normalizer {
	return &symbolNormalizer{
		logger: logger,
		replacer: strings.NewReplacer(
			"+", "加",
			"-", "杠",
			"*", "星",
			"/", "斜杠",
			"=", "等于",
		),
	}
}

func (n *symbolNormalizer) Normalize(text string) string {
	return n.replacer.Replace(text)
}
