// Package importer performs the one-time migration of a realtime-database
// JSON export into the document store. Each top-level key is classified
// into a shape variant before any write is dispatched, instead of probing
// types inline.
package importer

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// Kind is the shape variant of one top-level export value.
type Kind int

const (
	// KindDocumentList: an array of objects; each becomes a document with
	// a generated id.
	KindDocumentList Kind = iota
	// KindKeyedDocumentMap: an object whose every value is itself an
	// object; keys become document ids.
	KindKeyedDocumentMap
	// KindSingleDocument: any other object; stored whole under the fixed
	// id "data".
	KindSingleDocument
	// KindUnsupported: scalars and nulls; logged and skipped.
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindDocumentList:
		return "document list"
	case KindKeyedDocumentMap:
		return "keyed document map"
	case KindSingleDocument:
		return "single document"
	default:
		return "unsupported"
	}
}

// Classify decides the shape variant for one top-level export value.
func Classify(value interface{}) Kind {
	switch v := value.(type) {
	case []interface{}:
		return KindDocumentList
	case map[string]interface{}:
		// An empty object vacuously passes the all-objects check and ends
		// up a keyed map with zero documents, a no-op write.
		for _, item := range v {
			if _, ok := item.(map[string]interface{}); !ok {
				return KindSingleDocument
			}
		}
		return KindKeyedDocumentMap
	default:
		return KindUnsupported
	}
}

// Writer is the document-store write surface the importer needs.
type Writer interface {
	Put(ctx context.Context, collection, id string, fields map[string]interface{}) error
}

// Stats summarizes one migration run.
type Stats struct {
	Documents int
	Skipped   []string
}

// Run migrates a parsed export into the store. Top-level keys become
// collections; unsupported values are skipped, not fatal.
func Run(ctx context.Context, w Writer, export map[string]interface{}) (Stats, error) {
	var stats Stats

	for key, value := range export {
		switch Classify(value) {
		case KindDocumentList:
			list := value.([]interface{})
			count := 0
			for _, item := range list {
				fields, ok := item.(map[string]interface{})
				if !ok {
					log.Printf("[MIGRATE] Skipping non-object item in %s", key)
					continue
				}
				if err := w.Put(ctx, key, uuid.NewString(), fields); err != nil {
					return stats, fmt.Errorf("import %s: %w", key, err)
				}
				count++
			}
			stats.Documents += count
			log.Printf("[MIGRATE] Imported %d docs to %s", count, key)

		case KindKeyedDocumentMap:
			docs := value.(map[string]interface{})
			log.Printf("[MIGRATE] Detecting %s as a collection with explicit document IDs...", key)
			for docID, docData := range docs {
				if err := w.Put(ctx, key, docID, docData.(map[string]interface{})); err != nil {
					return stats, fmt.Errorf("import %s/%s: %w", key, docID, err)
				}
			}
			stats.Documents += len(docs)
			log.Printf("[MIGRATE] Imported %d docs to %s", len(docs), key)

		case KindSingleDocument:
			if err := w.Put(ctx, key, "data", value.(map[string]interface{})); err != nil {
				return stats, fmt.Errorf("import %s/data: %w", key, err)
			}
			stats.Documents++
			log.Printf("[MIGRATE] Imported object into collection %s/data", key)

		default:
			stats.Skipped = append(stats.Skipped, key)
			log.Printf("[MIGRATE] Skipping key %s, unsupported type %T", key, value)
		}
	}

	return stats, nil
}
