package dataset

import (
	"sort"
	"strings"
)

const (
	// DefaultWindow is the number of tokens inspected on each side of an
	// aspect span when assigning sentiment.
	DefaultWindow = 20

	// MaxSentenceTokens is the longest sentence accepted by the builder.
	// Longer sentences are skipped rather than truncated: truncation
	// would desynchronize aspect offsets from the serialized tokens.
	MaxSentenceTokens = 128

	// MinSentenceChars drops fragments too short to carry an aspect in
	// context.
	MinSentenceChars = 20
)

// Lexicon is the explicit domain configuration for dataset construction:
// the aspect term list and the sentiment cue words. It is passed into
// the builder rather than held as process state.
type Lexicon struct {
	// AspectTerms are the cybersecurity terms matched as aspects.
	// Multi-word terms are supported and win over shorter overlaps.
	AspectTerms []string

	// PositiveCues and NegativeCues are the sentiment-bearing context
	// words counted inside the window around a span.
	PositiveCues []string
	NegativeCues []string

	// Window is the per-side context width in tokens. Zero means
	// DefaultWindow.
	Window int

	positive map[string]struct{}
	negative map[string]struct{}
	terms    [][]string // tokenized, longest first
}

// DefaultLexicon returns the built-in cybersecurity lexicon.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		AspectTerms: []string{
			"vulnerability", "vulnerabilities",
			"exploit", "exploits", "exploiting",
			"malware", "viruses", "trojans", "ransomware", "spyware",
			"phishing", "phish",
			"data breach", "data leak", "information leak",
			"ddos", "denial of service", "denial-of-service",
			"firewall", "firewalls", "firewall vulnerabilities",
			"antivirus", "anti-virus",
			"encryption", "encrypt",
			"authentication", "authorization",
			"password", "passwords",
			"patch", "patches", "patching",
			"update", "updates", "backup", "backups",
			"network", "networks", "server", "servers",
			"database", "databases", "system", "systems",
			"security", "threat", "threats",
			"attack", "attacks", "cyberattack", "cyberattacks",
			"defense", "defenses", "protection", "detection",
			"prevention", "response", "recovery",
			"incident", "incidents", "breach", "breaches",
			"intrusion", "intrusions", "compromise",
			"hacker", "hackers", "hacking",
			"intellectual property", "persistent access",
		},
		PositiveCues: []string{
			"effective", "robust", "secure", "protected", "safe", "strong",
			"reliable", "successful", "improved", "enhanced", "fixed",
			"resolved", "prevented", "blocked", "detected", "mitigated",
			"restored", "patched", "secured",
		},
		NegativeCues: []string{
			"vulnerable", "vulnerability", "vulnerabilities", "compromised",
			"breached", "breach", "attacked", "failed", "weak", "exploited",
			"infected", "corrupted", "lost", "stolen", "unauthorized",
			"malicious", "dangerous", "risky", "insecure", "disrupted",
			"down", "unavailable", "crashed", "hacked", "encrypted",
			"inaccessible", "standstill", "disaster", "failure", "sabotaged",
		},
		Window: DefaultWindow,
	}
}

// Compile normalizes the lexicon: lowercases everything, tokenizes the
// aspect terms and orders them longest first so the matcher prefers
// "intellectual property" over "property". Must be called before the
// lexicon is used; the constructor-style helpers do this for you.
func (l *Lexicon) Compile() {
	if l.Window <= 0 {
		l.Window = DefaultWindow
	}

	l.terms = l.terms[:0]
	for _, term := range l.AspectTerms {
		tokens := strings.Fields(strings.ToLower(term))
		if len(tokens) > 0 {
			l.terms = append(l.terms, tokens)
		}
	}
	sort.SliceStable(l.terms, func(i, j int) bool {
		return len(l.terms[i]) > len(l.terms[j])
	})

	l.positive = cueSet(l.PositiveCues)
	l.negative = cueSet(l.NegativeCues)
}

func cueSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// isPositiveCue reports whether a normalized token is a positive cue.
func (l *Lexicon) isPositiveCue(token string) bool {
	_, ok := l.positive[token]
	return ok
}

// isNegativeCue reports whether a normalized token is a negative cue.
func (l *Lexicon) isNegativeCue(token string) bool {
	_, ok := l.negative[token]
	return ok
}
