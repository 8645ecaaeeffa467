package main

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/fahri-r/kosakata-go/vocab"
)

type configuration struct {
	Dump string `envconfig:"dump" default:"batch.bin"`
}

// batch is the gob payload consumed by downstream training jobs.
type batch struct {
	Padded [][]int
	Lens   []int
}

func main() {
	var config configuration
	err := envconfig.Process("ENCODE", &config)
	if err != nil {
		log.Fatal(err)
	}

	vocabFile := flag.String("v", "vocab.json", "vocabulary json file")
	input := flag.String("i", "dataset/clean_corpus.txt", "input sentence file")
	pad := flag.String("pad", "<pad>", "padding token")
	train := flag.Bool("train", false, "train unseen words instead of failing")
	endPad := flag.Bool("endpad", false, "append a trailing pad token to every sentence")
	open := flag.Bool("open", false, "load as an open vocabulary")
	flag.Parse()

	f, err := os.Open(*vocabFile)
	if err != nil {
		log.Fatal(err)
	}
	var d vocab.Dict
	if err := json.NewDecoder(f).Decode(&d); err != nil {
		log.Fatal(err)
	}
	f.Close()

	var v *vocab.Vocabulary
	if *open {
		v = vocab.FromOpenDict(d)
	} else {
		v = vocab.FromDict(d)
	}
	fmt.Printf("Vocabulary: %v\n", v)

	in, err := os.Open(*input)
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	var sentences [][]string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		words := strings.Fields(scanner.Text())
		if len(words) > 0 {
			sentences = append(sentences, words)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}

	padded, lens, err := v.WordsToPaddedIndices(sentences, *pad, *train, *endPad)
	if err != nil {
		log.Fatal(err)
	}

	t, err := vocab.IndexTensor(padded)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Padded batch shape: %v\n", t.Shape())

	out, err := os.OpenFile(config.Dump, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	if err := gob.NewEncoder(out).Encode(batch{Padded: padded, Lens: lens}); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Encoded %d sentences to %s\n", len(lens), config.Dump)
}
