package dump

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hamba/avro/v2"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/ndelvaux/wikidump/internal/cache"
	"github.com/ndelvaux/wikidump/internal/model"
)

// ErrPageNotFound indicates a title is absent from the index.
var ErrPageNotFound = errors.New("page not found in index")

// Index gives random access to pages by title. Records are stored
// Avro-encoded in LevelDB under their title, and recent lookups are
// memoized in an optional in-memory cache.
type Index struct {
	db    *leveldb.DB
	cache cache.Cache
}

// BuildIndex indexes every page of a source into a fresh LevelDB
// directory and returns the number of pages indexed. An existing index
// at dir is replaced.
func BuildIndex(ctx context.Context, src Source, dir string) (int, error) {
	if err := os.RemoveAll(dir); err != nil {
		return 0, fmt.Errorf("clear index dir: %w", err)
	}
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return 0, fmt.Errorf("open index: %w", err)
	}
	defer db.Close()

	count := 0
	batch := new(leveldb.Batch)
	err = src.IterPages(ctx, func(p *model.Page) error {
		data, err := avro.Marshal(PageSchema, toAvroPage(p))
		if err != nil {
			return fmt.Errorf("encode page %q: %w", p.Title, err)
		}
		batch.Put([]byte(p.Title), data)
		count++
		if batch.Len() >= 1000 {
			if err := db.Write(batch, nil); err != nil {
				return fmt.Errorf("write index batch: %w", err)
			}
			batch.Reset()
		}
		return nil
	})
	if err != nil {
		return count, err
	}
	if batch.Len() > 0 {
		if err := db.Write(batch, nil); err != nil {
			return count, fmt.Errorf("write index batch: %w", err)
		}
	}
	return count, nil
}

// OpenIndex opens an existing index. The cache may be nil to disable
// lookup memoization.
func OpenIndex(dir string, c cache.Cache) (*Index, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	return &Index{db: db, cache: c}, nil
}

// Close releases the underlying database.
func (ix *Index) Close() error {
	return ix.db.Close()
}

// PageByTitle returns the page stored under the exact title.
func (ix *Index) PageByTitle(title string) (*model.Page, error) {
	key := cache.Key(title)
	var data []byte
	if ix.cache != nil {
		if cached, ok := ix.cache.Get(key); ok {
			return decodePage(cached)
		}
	}
	data, err := ix.db.Get([]byte(title), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, title)
	}
	if err != nil {
		return nil, fmt.Errorf("index lookup %q: %w", title, err)
	}
	if ix.cache != nil {
		_ = ix.cache.Set(key, data, 0)
	}
	return decodePage(data)
}

// PagesByTitle returns the pages for the given titles, in order. A
// missing title fails the whole lookup.
func (ix *Index) PagesByTitle(titles []string) ([]*model.Page, error) {
	pages := make([]*model.Page, 0, len(titles))
	for _, title := range titles {
		p, err := ix.PageByTitle(title)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, nil
}

func decodePage(data []byte) (*model.Page, error) {
	var ap avroPage
	if err := avro.Unmarshal(PageSchema, data, &ap); err != nil {
		return nil, fmt.Errorf("decode indexed page: %w", err)
	}
	return ap.toPage()
}
