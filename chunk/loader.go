package chunk

import (
	"fmt"
	"io/fs"
	"math/rand/v2"
	"path"
	"sort"
	"time"

	"github.com/milk9111/higher/difficulty"
	log "github.com/sirupsen/logrus"
)

// Loader reads chunk files from a filesystem. Chunks of one difficulty live
// in dir/<bucket>/*.txt.
type Loader struct {
	fsys     fs.FS
	dir      string
	width    int
	selector difficulty.Selector
	rng      *rand.Rand

	listings map[string][]string
}

// NewLoader builds a loader. A nil rng gets a time-seeded generator.
func NewLoader(fsys fs.FS, dir string, width int, selector difficulty.Selector, rng *rand.Rand) *Loader {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Loader{
		fsys:     fsys,
		dir:      dir,
		width:    width,
		selector: selector,
		rng:      rng,
		listings: make(map[string][]string),
	}
}

// Width is the row width every loaded chunk is checked against.
func (l *Loader) Width() int {
	return l.width
}

// Load decodes a single chunk file.
func (l *Loader) Load(name string) (Rows, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("chunk: open %s: %w", name, err)
	}
	defer f.Close()

	rows, err := Decode(f, l.width)
	if err != nil {
		return nil, fmt.Errorf("chunk: %s: %w", name, err)
	}
	log.WithFields(log.Fields{"chunk": name, "rows": len(rows)}).Debug("chunk loaded")
	return rows, nil
}

// Next picks a random chunk from the bucket the selector assigns to depth.
func (l *Loader) Next(depth int) (Rows, error) {
	bucket, err := l.selector.Bucket(depth)
	if err != nil {
		return nil, err
	}
	files, err := l.list(bucket)
	if err != nil {
		return nil, err
	}
	name := files[l.rng.IntN(len(files))]
	log.WithFields(log.Fields{"bucket": bucket, "depth": depth, "chunk": name}).Debug("next chunk")
	return l.Load(name)
}

// Invalidate forgets cached bucket listings so new files are picked up.
func (l *Loader) Invalidate() {
	clear(l.listings)
}

func (l *Loader) list(bucket string) ([]string, error) {
	if files, ok := l.listings[bucket]; ok {
		return files, nil
	}
	files, err := fs.Glob(l.fsys, path.Join(l.dir, bucket, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("chunk: list %s: %w", bucket, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoChunks, bucket)
	}
	sort.Strings(files)
	l.listings[bucket] = files
	return files, nil
}
