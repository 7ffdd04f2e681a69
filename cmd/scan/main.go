// Library scan diagnostic: walks the configured sources (or the given
// directories) and reports what the player would find.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/llehouerou/muker/internal/config"
	"github.com/llehouerou/muker/internal/library"
	"github.com/llehouerou/muker/internal/playlist"
)

func main() {
	sources := os.Args[1:]
	if len(sources) == 0 {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		sources = cfg.LibrarySources
	}
	if len(sources) == 0 {
		log.Fatal("No sources: pass directories or set library_sources in the config")
	}

	result := library.Scan(sources)
	fmt.Println(result.Summary())

	tracks := playlist.FromPaths(result.Files)
	untagged := 0
	for _, t := range tracks {
		if t.Artist == "" && t.Album == "" {
			untagged++
			continue
		}
		fmt.Printf("%s - %s (%s)\n", t.Artist, t.Title, t.Album)
	}
	if untagged > 0 {
		fmt.Printf("%d files without tags\n", untagged)
	}
}
