// Package prep cleans raw Indonesian text into the word tokens consumed by
// vocabulary training: lowercasing, punctuation stripping, slang
// substitution and stemming. The vocabulary itself never tokenizes; this is
// the caller-side half of that contract.
package prep

import (
	"encoding/csv"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/RadhiFadlillah/go-sastrawi"
)

var (
	punctRe    = regexp.MustCompile("[" + regexp.QuoteMeta("!\"#$%&()*+,./:;<=>?@[\\]^_`{|}~") + "]")
	laughterRe = []*regexp.Regexp{
		regexp.MustCompile("((wk)+(w?)+(k?)+)+"),
		regexp.MustCompile("((xi)+(x?)+(i?)+)+"),
		regexp.MustCompile("((h(a|i|e)h)((a|i|e)?)+(h?)+((a|i|e)?)+)+"),
	}
)

// Normalizer holds the stemmer and slang table shared across sentences.
type Normalizer struct {
	stemmer sastrawi.Stemmer
	slang   map[string]string
}

// NewNormalizer builds a Normalizer over the default sastrawi dictionary.
// slang maps informal spellings to their normal forms and may be nil.
func NewNormalizer(slang map[string]string) *Normalizer {
	return &Normalizer{
		stemmer: sastrawi.NewStemmer(sastrawi.DefaultDictionary()),
		slang:   slang,
	}
}

// LoadSlang reads a two-column CSV of informal word, normal form.
func LoadSlang(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	slang := make(map[string]string)
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) >= 2 {
			slang[rec[0]] = rec[1]
		}
	}
	return slang, nil
}

// Sentence lowercases s, strips punctuation and laughter runs, substitutes
// slang and stems every remaining word.
func (n *Normalizer) Sentence(s string) string {
	s = punctRe.ReplaceAllString(strings.ToLower(s), "")
	s = strings.ReplaceAll(s, "\n", " ")
	for _, re := range laughterRe {
		s = re.ReplaceAllString(s, "")
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	words := strings.Fields(s)
	for i, w := range words {
		if normal, ok := n.slang[w]; ok && strings.TrimSpace(normal) != "" {
			w = normal
		}
		words[i] = n.stemmer.Stem(w)
	}
	return strings.TrimSpace(strings.Join(words, " "))
}

// Words normalizes s and splits it into word tokens.
func (n *Normalizer) Words(s string) []string {
	return strings.Fields(n.Sentence(s))
}
