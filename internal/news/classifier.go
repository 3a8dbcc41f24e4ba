package news

import "strings"

// Classifier scores the polarity of a piece of text in [-1, 1].
type Classifier interface {
	Polarity(text string) float64
}

// LexiconClassifier is a small word-list polarity scorer tuned for
// financial headlines. Polarity is (positive hits - negative hits) /
// total hits, so a headline with no lexicon words scores 0.
type LexiconClassifier struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

var positiveWords = []string{
	"gain", "gains", "rally", "rallies", "surge", "surges", "soar",
	"soars", "rise", "rises", "climb", "climbs", "jump", "jumps",
	"record", "strong", "strength", "boost", "boosts", "growth",
	"optimism", "optimistic", "beat", "beats", "recovery", "recovers",
	"rebound", "rebounds", "bullish", "high", "highs", "upbeat",
	"eases", "calm", "stable", "steady",
}

var negativeWords = []string{
	"fall", "falls", "drop", "drops", "plunge", "plunges", "slump",
	"slumps", "crash", "crashes", "tumble", "tumbles", "slide",
	"slides", "sink", "sinks", "weak", "weakness", "fear", "fears",
	"recession", "crisis", "war", "conflict", "loss", "losses", "cut",
	"cuts", "miss", "misses", "bearish", "low", "lows", "concern",
	"concerns", "turmoil", "panic", "selloff", "downturn", "slowdown",
}

// NewLexiconClassifier builds the classifier with the default lexicon.
func NewLexiconClassifier() *LexiconClassifier {
	c := &LexiconClassifier{
		positive: make(map[string]struct{}, len(positiveWords)),
		negative: make(map[string]struct{}, len(negativeWords)),
	}
	for _, w := range positiveWords {
		c.positive[w] = struct{}{}
	}
	for _, w := range negativeWords {
		c.negative[w] = struct{}{}
	}
	return c
}

func (c *LexiconClassifier) Polarity(text string) float64 {
	var pos, neg int
	for _, tok := range tokenize(text) {
		if _, ok := c.positive[tok]; ok {
			pos++
		} else if _, ok := c.negative[tok]; ok {
			neg++
		}
	}
	total := pos + neg
	if total == 0 {
		return 0
	}
	return float64(pos-neg) / float64(total)
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
}
