package vocab

import (
	"bytes"
	"encoding/gob"
)

// Dict is the serialized form of a vocabulary: the non-reserved words in
// index order plus their counts. Reserved tokens are omitted; they are
// reconstructed deterministically by the variant's constructor on load.
// The layout is embedding-agnostic and marshals cleanly to JSON.
type Dict struct {
	IndexToWord []string       `json:"index2word"`
	Counts      map[string]int `json:"counts"`
}

// ToDict extracts the serializable content of the vocabulary.
func (v *Vocabulary) ToDict() Dict {
	d := Dict{
		IndexToWord: make([]string, 0, v.Len()),
		Counts:      make(map[string]int, len(v.counts)),
	}
	for _, w := range v.indexToWord {
		if _, ok := v.reservedSet[w]; ok {
			continue
		}
		d.IndexToWord = append(d.IndexToWord, w)
		d.Counts[w] = v.counts[w]
	}
	return d
}

// FromDict rebuilds a closed vocabulary from a dict: each listed word is
// trained in order to restore its index, then its count is overwritten from
// the dict.
func FromDict(d Dict) *Vocabulary {
	return New().loadDict(d)
}

// FromOpenDict rebuilds an open vocabulary from a dict. The <unk> token is
// reinserted by construction before the listed words are restored.
func FromOpenDict(d Dict) *Vocabulary {
	return NewOpen().loadDict(d)
}

func (v *Vocabulary) loadDict(d Dict) *Vocabulary {
	for _, w := range d.IndexToWord {
		v.WordToIndex(w, true)
		v.counts[w] = d.Counts[w]
	}
	return v
}

// MarshalBinary gob-encodes the vocabulary's dict form. The variant is not
// encoded; the caller chooses it again on load.
func (v *Vocabulary) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v.ToDict()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary restores a vocabulary from MarshalBinary output, keeping
// the receiver's variant and reserved tokens.
func (v *Vocabulary) UnmarshalBinary(data []byte) error {
	var d Dict
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&d); err != nil {
		return err
	}
	*v = *v.emptyClone().loadDict(d)
	return nil
}
