// Package main provides a one-shot extraction tool: parse a release page
// from a URL or a local HTML file and print the assembled release data.
//
// Usage:
//
//	go run ./cmd/extract -url https://hoerspielforscher.de/kartei/europa/115545
//	go run ./cmd/extract -file page.html -template kartei
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dramaseed/dramaseed-server/internal/credits"
	"github.com/dramaseed/dramaseed-server/internal/domain"
	"github.com/dramaseed/dramaseed-server/internal/release"
	"github.com/dramaseed/dramaseed-server/internal/sites"
)

var (
	pageURL  = flag.String("url", "", "Release page URL to fetch")
	file     = flag.String("file", "", "Local HTML file to parse instead of fetching")
	template = flag.String("template", "", "Template name, picked by URL when empty")
)

func main() {
	flag.Parse()

	if *pageURL == "" && *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: extract -url <page url> | -file <html file> [-template <name>]")
		os.Exit(2)
	}

	scraper := sites.NewScraper(sites.NewRegistry())

	var page domain.PageData
	var templateName string
	var err error
	if *file != "" {
		var html []byte
		html, err = os.ReadFile(*file)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", *file, err)
		}
		page, templateName, err = scraper.ParseHTML(string(html), *template, *pageURL)
	} else {
		page, templateName, err = scraper.Scrape(context.Background(), *pageURL)
	}
	if err != nil {
		log.Fatalf("Extraction failed: %v", err)
	}

	result := struct {
		Template string             `json:"template"`
		Release  domain.ReleaseInfo `json:"release"`
		Crew     domain.Crew        `json:"crew"`
		Actors   []domain.Actor     `json:"actors"`
	}{
		Template: templateName,
		Release:  release.Assemble(page),
		Crew:     credits.ParseCrew(page.CrewBlocks),
		Actors:   credits.ParseActors(page.CastRows),
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(out))
}
