package essay

import (
	"regexp"
	"unicode/utf8"
)

// Thresholds tunes the skill-level heuristic.
type Thresholds struct {
	ThesisShort     int
	ThesisLong      int
	ParagraphShort  int
	ParagraphLong   int
	IntermediateMin int
	AdvancedMin     int
}

var DefaultThresholds = Thresholds{
	ThesisShort:     50,
	ThesisLong:      100,
	ParagraphShort:  80,
	ParagraphLong:   150,
	IntermediateMin: 3,
	AdvancedMin:     6,
}

var sophisticatedConnectives = regexp.MustCompile(`(?i)\b(portanto|contudo|outrossim|ademais|destarte)\b`)

func DetectLevel(ctx Context) Level {
	return DetectLevelWith(ctx, DefaultThresholds)
}

func DetectLevelWith(ctx Context, t Thresholds) Level {
	score := Score(ctx, t)
	switch {
	case score >= t.AdvancedMin:
		return LevelAdvanced
	case score >= t.IntermediateMin:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// Score is the raw heuristic value behind DetectLevelWith.
func Score(ctx Context, t Thresholds) int {
	score := 0

	thesisLen := utf8.RuneCountInString(ctx.Tese)
	if thesisLen > t.ThesisShort {
		score++
	}
	if thesisLen > t.ThesisLong {
		score++
	}

	for _, p := range ctx.Paragrafos.All() {
		if p == "" {
			continue
		}
		n := utf8.RuneCountInString(p)
		if n > t.ParagraphShort {
			score++
		}
		if n > t.ParagraphLong {
			score++
		}
		if sophisticatedConnectives.MatchString(p) {
			score++
		}
	}

	return score
}
