// Copyright (c) 2024-2026 Vocalabs
// Author: Wei Shan <wei@vocalabs.dev>
//
// Licensed under GPL-2.0 with Vocalabs Additional Terms.
// See LICENSE.md or contact sales@vocalabs.dev for commercial usage.

package textnorm

import (
	"regexp"

	"github.com/vocalabs/textprep/pkg/chinese"
	"github.com/vocalabs/textprep/pkg/commons"
)

// =============================================================================
// Math Expression Normalizer
// =============================================================================

// mathPattern claims one binary expression at a time. In a chain like
// 3+5=8 only 3+5 matches here, the trailing =8 is picked up by the number
// and symbol passes.
var mathPattern = regexp.MustCompile(`([+-]?\d+(?:\.\d+)?)\s*([+\-*/=])\s*([+-]?\d+(?:\.\d+)?)`)

var operatorWords = map[string]string{
	"+": "加",
	"-": "减",
	"*": "乘",
	"/": "除",
	"=": "等于",
}

type mathNormalizer struct {
	logger commons.Logger
}

// NewMathNormalizer reads simple arithmetic aloud, converting both operands
// as cardinal numbers and the operator to its spoken name.
func NewMathNormalizer(logger commons.Logger) Normalizer {
	return &mathNormalizer{logger: logger}
}

func (n *mathNormalizer) Normalize(text string) string {
	return mathPattern.ReplaceAllStringFunc(text, func(match string) string {
		parts := mathPattern.FindStringSubmatch(match)
		if len(parts) != 4 {
			return match
		}
		left, err := chinese.Convert(parts[1], chinese.ModeCardinal)
		if err != nil {
			n.logger.Warnf("normalizer: failed to convert operand %q: %v", parts[1], err)
			return match
		}
		right, err := chinese.Convert(parts[3], chinese.ModeCardinal)
		if err != nil {
			n.logger.Warnf("normalizer: failed to convert operand %q: %v", parts[3], err)
			return match
		}
		return left + operatorWords[parts[2]] + right
	})
}
