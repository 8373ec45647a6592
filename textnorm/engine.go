// Copyright (c) 2024-2026 Vocalabs
// Author: Wei Shan <wei@vocalabs.dev>
//
// Licensed under GPL-2.0 with Vocalabs Additional Terms.
// See LICENSE.md or contact sales@vocalabs.dev for commercial usage.

package textnorm

import (
	"context"
	"regexp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/vocalabs/textprep/pkg/commons"
	"github.com/vocalabs/textprep/pkg/utils"
)

// =============================================================================
// Speech Normalizer
// =============================================================================

// mandarinPipelineNames is the default pass order. Earlier passes claim the
// more specific shapes so later ones never see their fragments.
var mandarinPipelineNames = []string{
	"datetime",
	"time-range",
	"clock",
	"phone",
	"math",
	"number",
	"sign",
	"symbol",
}

// speechNormalizer prepares raw text for speech synthesis. Mandarin text
// runs the full conversion cascade, other languages only spell out small
// numbers.
type speechNormalizer struct {
	logger commons.Logger
	cfg    Config

	// normalizer pipeline
	pipeline []Normalizer
}

// NewSpeechNormalizer wires the full preparation pipeline for cfg.Language.
// Zero-value config fields fall back to the stock tables.
func NewSpeechNormalizer(logger commons.Logger, cfg Config) TextNormalizer {
	if cfg.Language == "" {
		cfg.Language = "zh"
	}
	if cfg.SuffixRules == nil {
		cfg.SuffixRules = DefaultSuffixRules()
	}
	if cfg.ExcludeSymbols == "" {
		cfg.ExcludeSymbols = DefaultExcludeSymbols
	}
	if cfg.MinKeywordLength <= 0 {
		cfg.MinKeywordLength = 2
	}

	var names []string
	if isMandarin(cfg.Language) {
		names = slices.Clone(mandarinPipelineNames)
		if len(cfg.Keywords) > 0 {
			names = append(names, "quotation")
		}
		if len(cfg.Corrections) > 0 {
			names = append(names, "pronunciation")
		}
	} else {
		names = []string{"number-en"}
	}

	return &speechNormalizer{
		logger:   logger,
		cfg:      cfg,
		pipeline: BuildNormalizerPipeline(logger, names, cfg),
	}
}

// NewSpeechNormalizerFromOptions builds a speech normalizer from a flat
// option bag, the shape synthesis callers pass around.
func NewSpeechNormalizerFromOptions(logger commons.Logger, opts utils.Option) TextNormalizer {
	cfg := DefaultConfig()

	if language, err := opts.GetString("normalizer.language"); err == nil && language != "" {
		cfg.Language = language
	}
	if addTag, err := opts.GetBool("normalizer.language.tag"); err == nil {
		cfg.AddLanguageTag = addTag
	}
	if keywords, err := opts.GetString("normalizer.quotation.keywords"); err == nil && keywords != "" {
		cfg.Keywords = strings.Split(keywords, commons.SEPARATOR)
	}
	if minLength, err := opts.GetInt("normalizer.quotation.minlength"); err == nil && minLength > 0 {
		cfg.MinKeywordLength = minLength
	}
	if symbols, err := opts.GetString("normalizer.exclude.symbols"); err == nil && symbols != "" {
		cfg.ExcludeSymbols = symbols
	}

	return NewSpeechNormalizer(logger, cfg)
}

// Normalize runs the whole preparation chain: cleanup, sentence
// finalization, the per-language pipeline and a final whitespace collapse.
func (n *speechNormalizer) Normalize(ctx context.Context, text string) string {
	if text == "" {
		return text
	}
	start := time.Now()
	defer func() {
		n.logger.Benchmark("speechNormalizer.Normalize", time.Since(start))
	}()
	n.logger.Tracef(ctx, "normalizer: preparing %d bytes of %q text", len(text), n.cfg.Language)

	text = n.clean(text)
	text = FinalizeSentence(text, n.cfg.Language, n.cfg.AddLanguageTag)

	for _, normalizer := range n.pipeline {
		text = normalizer.Normalize(text)
	}
	return n.normalizeWhitespace(text)
}

func isMandarin(language string) bool {
	language = strings.ToLower(strings.TrimSpace(language))
	return language == "zh" || strings.HasPrefix(language, "zh-")
}

// =============================================================================
// Private Helpers
// =============================================================================

// clean drops newlines, rewrites the corner marks the model cannot speak and
// folds the text to NFC so composed and decomposed forms convert the same.
func (n *speechNormalizer) clean(text string) string {
	text = strings.ReplaceAll(text, "\n", "")
	text = cornerMarkReplacer.Replace(text)
	return norm.NFC.String(text)
}

// normalizeWhitespace collapses multiple spaces and trims.
func (n *speechNormalizer) normalizeWhitespace(text string) string {
	re := regexp.MustCompile(`\s+`)
	result := re.ReplaceAllString(text, " ")
	return strings.TrimSpace(result)
}
