// Command hebsent splits text into sentences, one per output line.
// It is a thin wrapper over the segment package: input comes from a file
// or stdin, optionally transcoded from a legacy Hebrew encoding.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/hebnlp/hebsent/chunker"
	"github.com/hebnlp/hebsent/reader"
	"github.com/hebnlp/hebsent/schema"
	"github.com/hebnlp/hebsent/segment"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hebsent: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	in := flag.String("in", "", "input file (default: stdin)")
	enc := flag.String("encoding", "", "source encoding: windows-1255, iso-8859-8 (default: utf-8)")
	marker := flag.String("marker", "", "override the boundary marker rune")
	asJSON := flag.Bool("json", false, "emit sentences as a JSON array")
	universal := flag.Bool("universal", false, "treat any Unicode letter or digit as a word character")
	maxTokens := flag.Int("chunk", 0, "group sentences into chunks of at most this many whitespace tokens (0: no chunking)")
	overlap := flag.Int("overlap", 0, "chunk overlap in tokens, used with -chunk")
	flag.Parse()

	var opts []segment.Option
	if *marker != "" {
		runes := []rune(*marker)
		if len(runes) != 1 {
			return fmt.Errorf("-marker must be a single rune, got %q", *marker)
		}
		opts = append(opts, segment.WithMarker(runes[0]))
	}
	if *universal {
		opts = append(opts, segment.WithScript(segment.Universal))
	}

	seg, err := segment.New(opts...)
	if err != nil {
		return err
	}

	r := reader.NewTextReaderWithEncoding(*enc)
	doc, err := readInput(r, *in)
	if err != nil {
		return err
	}

	sents, err := seg.Sentences(doc.Text)
	if err != nil {
		return err
	}

	if *maxTokens > 0 {
		c, err := chunker.New(*maxTokens, *overlap, nil)
		if err != nil {
			return err
		}
		sents = c.Chunk(sents)
	}

	if *asJSON {
		out := json.NewEncoder(os.Stdout)
		out.SetEscapeHTML(false)
		return out.Encode(sents)
	}
	for _, s := range sents {
		fmt.Println(s)
	}
	return nil
}

func readInput(r *reader.TextReader, path string) (schema.Document, error) {
	if path == "" {
		return r.Read(os.Stdin)
	}
	return r.ReadFile(path)
}
