// Copyright (c) 2024-2026 Vocalabs
// Author: Wei Shan <wei@vocalabs.dev>
//
// Licensed under GPL-2.0 with Vocalabs Additional Terms.
// See LICENSE.md or contact sales@vocalabs.dev for commercial usage.

package textnorm

import (
	"github.com/dlclark/regexp2"

	"github.com/vocalabs/textprep/pkg/chinese"
	"github.com/vocalabs/textprep/pkg/commons"
)

// =============================================================================
// Signed Number Normalizer
// =============================================================================

type signNormalizer struct {
	logger  commons.Logger
	pattern *regexp2.Regexp
}

// NewSignNormalizer converts the signed numbers the number pass deferred.
// The lookarounds keep it off subtraction and ranges, where the digit on the
// other side of the sign disqualifies the match.
func NewSignNormalizer(logger commons.Logger) Normalizer {
	return &signNormalizer{
		logger:  logger,
		pattern: regexp2.MustCompile(`(?<!\d)[+-]\d+(?:\.\d+)?(?!\d)`, regexp2.None),
	}
}

func (n *signNormalizer) Normalize(text string) string {
	out, err := n.pattern.ReplaceFunc(text, func(m regexp2.Match) string {
		token := m.String()
		spoken, err := chinese.Convert(token, chinese.ModeCardinal)
		if err != nil {
			n.logger.Warnf("normalizer: failed to convert signed number %q: %v", token, err)
			return token
		}
		return spoken
	}, -1, -1)
	if err != nil {
		n.logger.Errorf("normalizer: sign replacement failed: %v", err)
		return text
	}
	return out
}
