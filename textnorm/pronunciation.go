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
// Pronunciation Normalizer
// =============================================================================

type pronunciationNormalizer struct {
	logger        commons.Logger
	substitutions []Substitution
}

// NewPronunciationNormalizer rewrites words the synthesis model mispronounces
// to a spelling it reads correctly. Substitutions apply in table order and
// later entries see the output of earlier ones, so the caller orders the
// table to avoid chained rewrites.
func NewPronunciationNormalizer(logger commons.Logger, substitutions []Substitution) Normalizer {
	copied := make([]Substitution, len(substitutions))
	copy(copied, substitutions)
	return &pronunciationNormalizer{logger: logger, substitutions: copied}
}

func (n *pronunciationNormalizer) Normalize(text string) string {
	for _, s := range n.substitutions {
		text = strings.ReplaceAll(text, s.From, s.To)
	}
	return text
}
