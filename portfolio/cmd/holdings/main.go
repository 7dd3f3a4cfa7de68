package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/tdial/ranged-for/cursor"
	"github.com/tdial/ranged-for/portfolio"
)

var (
	symbols = flag.String("symbols", "",
		"comma-separated holdings to load (empty loads the classic four)")
	mode = flag.String("mode", "cursor",
		"how to walk the portfolio: cursor, each, pull, range or chan")
)

func main() {
	flag.Parse()

	var p *portfolio.Portfolio
	if *symbols == "" {
		p = portfolio.Classic()
	} else {
		p = portfolio.New(strings.Split(*symbols, ",")...)
	}

	switch *mode {
	case "cursor":
		for it := p.Begin(); it.NotEqual(p.End()); it = it.Advance() {
			fmt.Println(it.Item())
		}
	case "each":
		p.ForEach(func(symbol string) bool {
			fmt.Println(symbol)
			return true
		})
	case "pull":
		it := cursor.NewPull[string](p.Begin(), p.End())
		for it.Next() {
			fmt.Println(it.Item())
		}
	case "range":
		for symbol := range p.All() {
			fmt.Println(symbol)
		}
	case "chan":
		for symbol := range p.Coroutine().Items() {
			fmt.Println(symbol)
		}
	default:
		panic("not a valid mode")
	}
}
