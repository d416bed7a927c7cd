//go:build ignore

// gen_zone_files.go – run with:
//
//	go run scripts/gen_zone_files.go
//
// Writes every built-in zone to assets/zones/<id>.json as a starting point
// for custom zone files. Edit a copy and pass it with --zone-file.
package main

import (
	"log"
	"path/filepath"

	"github.com/appengine-ltd/weathergen/internal/climatefile"
	"github.com/appengine-ltd/weathergen/internal/zones"
)

func main() {
	for _, id := range zones.IDs() {
		zone, err := zones.Lookup(id)
		if err != nil {
			log.Fatal(err)
		}
		path := filepath.Join("assets", "zones", id+".json")
		if err := climatefile.WriteZone(path, zone); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
		log.Printf("wrote %s", path)
	}
}
