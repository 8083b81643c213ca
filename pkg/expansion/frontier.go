package expansion

// bucketWidth is the cost span of one priority bucket, in seconds.
// Narrow enough that the in-bucket scan stays short on road networks,
// wide enough that a bounded expansion rarely spills into overflow.
const bucketWidth = 5.0

// minBuckets is the floor applied to hook-supplied bucket counts.
const minBuckets = 16

// frontier is a bucketed priority structure over expansion labels.
//
// Labels live in an append-only arena; buckets hold arena indexes grouped by
// cost band relative to a moving base. Labels whose cost falls beyond the
// last bucket collect in an overflow list and are redistributed when the
// regular buckets drain. pop always returns the lowest-cost label: pushes
// never land before the cursor because accumulated costs are non-decreasing.
type frontier struct {
	width    float64
	base     float64
	labels   []Label
	buckets  [][]int
	overflow []int
	cursor   int
	size     int
}

func newFrontier(bucketCount, reservation int) *frontier {
	if bucketCount < minBuckets {
		bucketCount = minBuckets
	}
	if reservation < 0 {
		reservation = 0
	}
	return &frontier{
		width:   bucketWidth,
		labels:  make([]Label, 0, reservation),
		buckets: make([][]int, bucketCount),
	}
}

// push adds a label to the frontier.
func (f *frontier) push(l Label) {
	idx := len(f.labels)
	f.labels = append(f.labels, l)
	b := f.bucketFor(l.Cost)
	if b >= len(f.buckets) {
		f.overflow = append(f.overflow, idx)
	} else {
		f.buckets[b] = append(f.buckets[b], idx)
	}
	f.size++
}

// pop removes and returns the lowest-cost label, or false when empty.
func (f *frontier) pop() (Label, bool) {
	for f.size > 0 {
		for f.cursor < len(f.buckets) {
			bucket := f.buckets[f.cursor]
			if len(bucket) == 0 {
				f.cursor++
				continue
			}
			mi := 0
			for i := 1; i < len(bucket); i++ {
				if f.labels[bucket[i]].Cost < f.labels[bucket[mi]].Cost {
					mi = i
				}
			}
			idx := bucket[mi]
			f.buckets[f.cursor] = append(bucket[:mi], bucket[mi+1:]...)
			f.size--
			return f.labels[idx], true
		}
		if len(f.overflow) == 0 {
			break
		}
		f.rebase()
	}
	return Label{}, false
}

// rebase moves the bucket base to the cheapest overflow label and
// redistributes the overflow across the regular buckets.
func (f *frontier) rebase() {
	minCost := f.labels[f.overflow[0]].Cost
	for _, idx := range f.overflow[1:] {
		if c := f.labels[idx].Cost; c < minCost {
			minCost = c
		}
	}
	f.base = minCost
	f.cursor = 0

	pending := f.overflow
	f.overflow = nil
	for i := range f.buckets {
		f.buckets[i] = f.buckets[i][:0]
	}
	for _, idx := range pending {
		b := f.bucketFor(f.labels[idx].Cost)
		if b >= len(f.buckets) {
			f.overflow = append(f.overflow, idx)
		} else {
			f.buckets[b] = append(f.buckets[b], idx)
		}
	}
}

func (f *frontier) bucketFor(cost float64) int {
	d := cost - f.base
	if d < 0 {
		d = 0
	}
	return int(d / f.width)
}
