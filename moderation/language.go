package moderation

import (
	"log/slog"
	"sort"

	"github.com/abadojack/whatlanggo"
)

// LanguageModerator censors a text with the dictionary of its detected language.
// When the language is unknown, unreliable or has no dictionary, every word of
// every dictionary applies.
type LanguageModerator struct {
	log        *slog.Logger
	byLanguage map[string]*Moderator
	fallback   *Moderator
	detect     func(text string) string
}

func NewLanguageModerator(dictionaries map[string][]string, censoredChar rune, log *slog.Logger) (*LanguageModerator, error) {
	byLanguage := make(map[string]*Moderator, len(dictionaries))
	unique := make(map[string]struct{})
	for lang, words := range dictionaries {
		m, err := NewModerator(words, censoredChar, log)
		if err != nil {
			return nil, err
		}
		byLanguage[lang] = &m
		for _, w := range words {
			unique[w] = struct{}{}
		}
	}

	all := make([]string, 0, len(unique))
	for w := range unique {
		all = append(all, w)
	}
	sort.Strings(all)
	fallback, err := NewModerator(all, censoredChar, log)
	if err != nil {
		return nil, err
	}

	return &LanguageModerator{
		log:        log,
		byLanguage: byLanguage,
		fallback:   &fallback,
		detect:     DetectLanguage,
	}, nil
}

// DetectLanguage gives the ISO 639-1 code of the text, empty when detection is not reliable
func DetectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}

func (m *LanguageModerator) Censor(original string) (string, []string) {
	lang := m.detect(original)
	moderator, ok := m.byLanguage[lang]
	if !ok {
		moderator = m.fallback
	}

	sanitized, words := moderator.Censor(original)
	if len(words) > 0 {
		m.log.Info("Room name moderated", "lang", lang, "dictionary", ok, "words", len(words))
	} else {
		m.log.Debug("Room name language", "lang", lang, "dictionary", ok)
	}
	return sanitized, words
}
