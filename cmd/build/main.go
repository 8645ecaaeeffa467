package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/kelseyhightower/envconfig"

	"github.com/fahri-r/kosakata-go/vocab"
)

type configuration struct {
	MinCount int    `envconfig:"min_count" default:"0"`
	MaxWords int    `envconfig:"max_words" default:"0"`
	Open     bool   `envconfig:"open" default:"false"`
	Dump     string `envconfig:"dump" default:"vocab.json"`
	TopWords int    `envconfig:"top_words" default:"20"`
}

type wordFrequency struct {
	Word  string
	Count int
}

func main() {
	var config configuration
	err := envconfig.Process("BUILD", &config)
	if err != nil {
		log.Fatal(err)
	}

	input := flag.String("i", "dataset/clean_corpus.txt", "input file name")
	flag.Parse()

	f, err := os.Open(*input)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	var v *vocab.Vocabulary
	if config.Open {
		v = vocab.NewOpen()
	} else {
		v = vocab.New()
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words := strings.Fields(scanner.Text())
		if len(words) == 0 {
			continue
		}
		if _, err := v.WordsToIndices(words, true); err != nil {
			log.Fatal(err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Vocabulary: %v\n", v)

	if config.MinCount > 0 {
		v = v.PruneByCount(config.MinCount)
		fmt.Printf("After count pruning (>=%d): %v\n", config.MinCount, v)
	}
	if config.MaxWords > 0 {
		v = v.PruneByTotal(config.MaxWords)
		fmt.Printf("After size pruning (top %d): %v\n", config.MaxWords, v)
	}

	dump, err := os.Create(config.Dump)
	if err != nil {
		log.Fatal(err)
	}
	defer dump.Close()
	enc := json.NewEncoder(dump)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v.ToDict()); err != nil {
		log.Fatal(err)
	}

	var frequencies []wordFrequency
	for word, count := range v.Counts() {
		frequencies = append(frequencies, wordFrequency{word, count})
	}
	df := dataframe.LoadStructs(frequencies)
	df = df.Arrange(dataframe.RevSort("Count"))
	if config.TopWords > 0 && df.Nrow() > config.TopWords {
		head := make([]int, config.TopWords)
		for i := range head {
			head[i] = i
		}
		df = df.Subset(head)
	}
	fmt.Println(df)
}
