package palette

import (
	"fmt"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// Metric measures the distance between two colors. Implementations must be
// symmetric, non-negative and zero for identical colors.
type Metric interface {
	Distance(a, b Color) float64
}

// Euclidean is the cheap metric: summed squared channel differences in RGB
// space. Alpha is ignored.
type Euclidean struct{}

func (Euclidean) Distance(a, b Color) float64 {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return float64(dr*dr + dg*dg + db*db)
}

// CIEDE2000 is the perceptual metric: both colors are converted to Lab
// space and compared with the CIEDE2000 delta. The conversion is expensive,
// so results are memoized for the lifetime of the metric, keyed by the
// unordered color pair. The palette is small and finite, which bounds the
// number of distinct pairs queryable against it.
type CIEDE2000 struct {
	mu   sync.Mutex
	memo map[[2]uint32]float64
}

// NewCIEDE2000 returns a perceptual metric with an empty cache.
func NewCIEDE2000() *CIEDE2000 {
	return &CIEDE2000{memo: make(map[[2]uint32]float64)}
}

func (m *CIEDE2000) Distance(a, b Color) float64 {
	k := pairKey(a, b)
	m.mu.Lock()
	d, ok := m.memo[k]
	m.mu.Unlock()
	if ok {
		return d
	}
	// Computed outside the lock; concurrent first-writers of the same key
	// overwrite each other with the identical value.
	d = labDelta(a, b)
	m.mu.Lock()
	m.memo[k] = d
	m.mu.Unlock()
	return d
}

// CacheSize reports the number of memoized pairs.
func (m *CIEDE2000) CacheSize() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.memo)
}

func pairKey(a, b Color) [2]uint32 {
	x, y := a.packed(), b.packed()
	if x > y {
		x, y = y, x
	}
	return [2]uint32{x, y}
}

func labDelta(a, b Color) float64 {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	return ca.DistanceCIEDE2000(cb)
}

// ParseMetric resolves a metric by name. "lab" (or "ciede2000") selects the
// perceptual metric, "rgb" (or "euclidean") the squared-difference one.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(name) {
	case "lab", "ciede2000":
		return NewCIEDE2000(), nil
	case "rgb", "euclidean":
		return Euclidean{}, nil
	default:
		return nil, fmt.Errorf("palette: unknown metric %q", name)
	}
}
