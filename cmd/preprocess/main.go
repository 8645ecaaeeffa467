package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"github.com/fahri-r/kosakata-go/prep"
)

type sentenceLength struct {
	Length    int
	Sentences int
}

func main() {
	input := flag.String("i", "dataset/corpus.csv", "input file directory")
	output := flag.String("o", "dataset/clean_corpus.txt", "output file directory")
	slangFile := flag.String("slang", "", "slang substitution csv")
	flag.Parse()

	var slang map[string]string
	if *slangFile != "" {
		var err error
		slang, err = prep.LoadSlang(*slangFile)
		if err != nil {
			log.Fatal(err)
		}
	}
	normalizer := prep.NewNormalizer(slang)

	f, err := os.Open(*input)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	out, err := os.Create(*output)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	lengths := make(map[int]int)
	csvReader := csv.NewReader(f)
	csvReader.FieldsPerRecord = -1
	csvReader.Comma = '|'
	for {
		rec, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal(err)
		}

		for _, field := range rec {
			words := normalizer.Words(field)
			if len(words) == 0 {
				continue
			}
			lengths[len(words)]++
			if _, err := fmt.Fprintln(w, strings.Join(words, " ")); err != nil {
				log.Fatal(err)
			}
		}
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}

	var lengthArr []sentenceLength
	for length, total := range lengths {
		lengthArr = append(lengthArr, sentenceLength{length, total})
	}
	df := dataframe.LoadStructs(lengthArr)
	df = df.Arrange(dataframe.Sort("Length"))
	fmt.Println(df)
}
