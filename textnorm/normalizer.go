// Copyright (c) 2024-2026 Vocalabs
// Author: Wei Shan <wei@vocalabs.dev>
//
// Licensed under GPL-2.0 with Vocalabs Additional Terms.
// See LICENSE.md or contact sales@vocalabs.dev for commercial usage.

// Package textnorm rewrites written-form text into the spoken form expected
// by speech synthesis models. Digits, dates, clock times, phone numbers,
// arithmetic expressions, unit-suffixed quantities and stray math symbols all
// come out as Mandarin words; keyword quoting and pronunciation correction
// run as secondary passes over the same string-rewriting substrate.
package textnorm

import (
	"context"
	"strings"

	"github.com/vocalabs/textprep/pkg/chinese"
	"github.com/vocalabs/textprep/pkg/commons"
)

// =============================================================================
// Text Normalizer Interfaces
// =============================================================================

// TextNormalizer is the outer contract for full text preparation.
// Implementations own pass ordering and sentence finalization.
type TextNormalizer interface {
	// Normalize transforms text for optimal TTS output.
	Normalize(ctx context.Context, text string) string
}

// Normalizer is a single rewrite pass. Passes are pure functions of their
// input text; the pipeline feeds each pass the output of the previous one,
// so a span rewritten early is never re-examined later.
type Normalizer interface {
	Normalize(text string) string
}

// =============================================================================
// Suffix Rules
// =============================================================================

// SuffixRule binds a trailing unit string to a reading.
type SuffixRule struct {

	// Mode is the reading applied when the suffix matches.
	Mode chinese.Mode

	// Lengths, when non-empty, lists the digit counts the rule accepts.
	// A number whose digit count is not listed reads cardinal regardless
	// of Mode.
	Lengths []int
}

// DefaultExcludeSymbols suppresses bare-number conversion next to arithmetic
// and currency symbols, deferring the token to the sign and symbol passes.
const DefaultExcludeSymbols = "+-*/=$|"

// DefaultSuffixRules returns the stock unit table. Years read digit by digit
// when written with four digits, decade terms (80后) with two; everything
// else counts as a quantity and reads cardinal.
func DefaultSuffixRules() map[string]SuffixRule {
	rules := map[string]SuffixRule{
		"年": {Mode: chinese.ModeDigit, Lengths: []int{4}},
		"后": {Mode: chinese.ModeDigit, Lengths: []int{2}},
	}
	cardinal := []string{
		"%", "‰", "‱", "月", "日", "小时", "分钟", "秒", "个", "人", "次", "份",
		"元", "美元", "米", "千克", "升", "遍", "件", "瓶", "款", "道", "天", "多",
		"家", "双", "KG", "℃",
	}
	for _, unit := range cardinal {
		rules[unit] = SuffixRule{Mode: chinese.ModeCardinal}
	}
	return rules
}

// =============================================================================
// Configuration
// =============================================================================

// Substitution replaces one literal reading with another.
type Substitution struct {
	From string
	To   string
}

// Config carries everything the passes need. Dictionaries are supplied by the
// caller, loaded once, and never mutated by the engine.
type Config struct {

	// Language selects the pipeline; "zh" runs the spoken-form cascade.
	Language string

	// AddLanguageTag prefixes the inline language tag (e.g. <|zh|>) during
	// sentence finalization.
	AddLanguageTag bool

	// SuffixRules is the unit table for the number pass.
	SuffixRules map[string]SuffixRule

	// ExcludeSymbols are the characters that suppress bare-number matches.
	ExcludeSymbols string

	// Keywords are quoted by the quotation pass when non-empty.
	Keywords []string

	// MinKeywordLength skips quoting of keywords shorter than this many runes.
	MinKeywordLength int

	// Corrections are applied in order by the pronunciation pass.
	Corrections []Substitution
}

func DefaultConfig() Config {
	return Config{
		Language:         "zh",
		SuffixRules:      DefaultSuffixRules(),
		ExcludeSymbols:   DefaultExcludeSymbols,
		MinKeywordLength: 2,
	}
}

// =============================================================================
// Pipeline Registry
// =============================================================================

// BuildNormalizerPipeline assembles rewrite passes by name. Unknown names are
// skipped with a warning so a misspelled configuration degrades instead of
// failing the caller.
func BuildNormalizerPipeline(logger commons.Logger, names []string, cfg Config) []Normalizer {
	normalizers := make([]Normalizer, 0, len(names))

	for _, name := range names {
		name = strings.TrimSpace(strings.ToLower(name))
		var normalizer Normalizer

		switch name {
		case "datetime":
			normalizer = NewDatetimeNormalizer(logger)
		case "time-range", "timerange":
			normalizer = NewTimeRangeNormalizer(logger)
		case "clock", "clock-time":
			normalizer = NewClockTimeNormalizer(logger)
		case "phone":
			normalizer = NewPhoneNormalizer(logger)
		case "math", "arithmetic":
			normalizer = NewMathNormalizer(logger)
		case "number":
			normalizer = NewNumberNormalizer(logger, cfg.SuffixRules, cfg.ExcludeSymbols)
		case "sign":
			normalizer = NewSignNormalizer(logger)
		case "symbol":
			normalizer = NewSymbolNormalizer(logger)
		case "number-en", "number-to-word":
			normalizer = NewEnglishNumberNormalizer(logger)
		case "quotation":
			normalizer = NewQuotationNormalizer(logger, cfg.Keywords, cfg.MinKeywordLength)
		case "pronunciation":
			normalizer = NewPronunciationNormalizer(logger, cfg.Corrections)
		default:
			logger.Warnf("normalizer: unknown normalizer '%s', skipping", name)
			continue
		}
		normalizers = append(normalizers, normalizer)
	}
	return normalizers
}
