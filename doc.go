// Package sanzang provides glossary-driven term substitution and
// punctuation-aware segmentation for CJK text.
//
// Sanzang assists human translation of Chinese, Japanese and Korean
// texts: known source-language terms are replaced or annotated with
// target-language glosses by a longest-match scan over one or more
// glossaries, and running CJK text is split into numbered units along
// sentence-ending punctuation for line-by-line bilingual review.
//
// Basic usage:
//
//	import (
//	    "github.com/yaoguai/sanzang-lib"
//	    "github.com/yaoguai/sanzang-lib/glossary"
//	)
//
//	func main() {
//	    g, err := glossary.Load("terms.tsv")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    index, err := sanzang.BuildIndex(g)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out := sanzang.Substitute("阿彌陀佛", index, sanzang.Replace)
//	    fmt.Println(out) // Amitabha Buddha
//	}
//
// For structured content, an Engine ties the substitution scan to
// content processors (HTML, plain text) and an optional result cache:
//
//	e := sanzang.NewEngine(index,
//	    sanzang.WithMode(sanzang.Annotate),
//	    sanzang.WithCache(cache.NewInMemoryCache(3600)),
//	    sanzang.WithProcessor(processor.NewHTMLProcessor()),
//	)
//	result, err := e.ProcessHTML(context.Background(), "<p>念佛</p>")
package sanzang
