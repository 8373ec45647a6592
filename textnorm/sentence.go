// Copyright (c) 2024-2026 Vocalabs
// Author: Wei Shan <wei@vocalabs.dev>
//
// Licensed under GPL-2.0 with Vocalabs Additional Terms.
// See LICENSE.md or contact sales@vocalabs.dev for commercial usage.

package textnorm

import (
	"strings"

	"github.com/vocalabs/textprep/pkg/utils"
)

// =============================================================================
// Sentence Finalizer
// =============================================================================

// languageTags maps a language code to the inline tag the synthesis model
// expects in front of the text.
var languageTags = map[string]string{
	"zh":    "<|zh|>",
	"zh-cn": "<|zh|>",
	"en":    "<|en|>",
	"ja":    "<|jp|>",
	"ko":    "<|ko|>",
}

var terminalPunctuation = []string{".", "。", "！", "!", "？", "?"}

// FinalizeSentence appends terminal punctuation when the text has none and
// optionally prefixes the language tag. Mandarin and Japanese take 。, other
// languages a period. Blank text and already tagged text pass unchanged.
func FinalizeSentence(text, language string, addLanguageTag bool) string {
	if utils.IsEmpty(text) {
		return text
	}
	language = strings.ToLower(strings.TrimSpace(language))

	tag := ""
	if addLanguageTag {
		tag = languageTags[language]
		if tag != "" && strings.HasPrefix(text, tag) {
			tag = ""
		}
	}

	if !hasTerminalPunctuation(text) {
		switch language {
		case "zh", "zh-cn", "ja":
			text += "。"
		default:
			text += "."
		}
	}
	return tag + text
}

func hasTerminalPunctuation(text string) bool {
	for _, p := range terminalPunctuation {
		if strings.HasSuffix(text, p) {
			return true
		}
	}
	return false
}
