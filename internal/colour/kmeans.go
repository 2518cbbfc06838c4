package colour

import (
	"cmp"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
	"slices"
)

// Dominant is a colour sampled from an image together with the share of
// sampled pixels it represents.
type Dominant struct {
	Color  Color   `json:"color"`
	Weight float64 `json:"weight"`
}

// KMeansExtractor extracts dominant colours from an image using k-means clustering.
type KMeansExtractor struct {
	maxIterations int
	convergence   float64
	maxSamples    int
	rng           *rand.Rand
}

// NewKMeansExtractor creates a new KMeansExtractor with default settings.
// The random source is seeded with a constant so repeated runs over the
// same image give the same result.
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{
		maxIterations: 20,
		convergence:   2.0,
		maxSamples:    2000,
		rng:           rand.New(rand.NewSource(1)), // #nosec G404 -- clustering, not security
	}
}

// Extract returns up to count dominant colours, heaviest first.
// Fully transparent pixels are skipped.
func (e *KMeansExtractor) Extract(img image.Image, count int) ([]Dominant, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if count > 256 {
		return nil, fmt.Errorf("colour count too large: %d (maximum: 256)", count)
	}

	points := e.samplePixels(img)
	if len(points) == 0 {
		return nil, fmt.Errorf("no opaque pixels found in image")
	}

	// Fewer distinct colours than requested: return them all.
	unique := make(map[point3D]int)
	for _, p := range points {
		unique[p]++
	}
	if count >= len(unique) {
		result := make([]Dominant, 0, len(unique))
		for p, n := range unique {
			result = append(result, Dominant{Color: p.colour(), Weight: float64(n) / float64(len(points))})
		}
		sortDominant(result)
		return result, nil
	}

	centroids, weights := e.kmeans(points, count)

	result := make([]Dominant, 0, len(centroids))
	for i, c := range centroids {
		if weights[i] == 0 {
			continue
		}
		result = append(result, Dominant{Color: c.colour(), Weight: weights[i]})
	}
	sortDominant(result)
	return result, nil
}

// sortDominant orders by descending weight, then by hex for stable output.
func sortDominant(d []Dominant) {
	slices.SortStableFunc(d, func(a, b Dominant) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		default:
			return cmp.Compare(a.Color.Hex(), b.Color.Hex())
		}
	})
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points in RGB space.
func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func (p point3D) colour() Color {
	return Opaque(clampChannel(p.R), clampChannel(p.G), clampChannel(p.B))
}

// samplePixels samples opaque pixels from the image.
// Large images are sampled on a grid to bound the work.
func (e *KMeansExtractor) samplePixels(img image.Image) []point3D {
	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()

	step := 1
	if totalPixels > e.maxSamples {
		step = max(int(math.Sqrt(float64(totalPixels)/float64(e.maxSamples))), 1)
	}

	points := make([]point3D, 0, min(totalPixels, e.maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if n.A == 0 {
				continue
			}
			points = append(points, point3D{R: float64(n.R), G: float64(n.G), B: float64(n.B)})
			if len(points) >= e.maxSamples {
				return points
			}
		}
	}
	return points
}

// kmeans performs k-means clustering on the sampled points.
// Returns centroids and their weights (relative cluster sizes).
func (e *KMeansExtractor) kmeans(points []point3D, k int) ([]point3D, []float64) {
	centroids := e.initializeCentroidsKMeansPlusPlus(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.maxIterations; iter++ {
		changed := 0
		for i, point := range points {
			nearest := findNearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// Fewer than 1% of assignments moved.
		if iter > 0 && float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		newCentroids := e.recalculateCentroids(points, assignments, k)

		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(newCentroids[i])
		}
		centroids = newCentroids

		if totalMovement/float64(k) < e.convergence {
			break
		}
	}

	// Reassign against the final centroids before weighing clusters.
	for i, point := range points {
		assignments[i] = findNearestCentroid(point, centroids)
	}

	weights := make([]float64, k)
	for _, assignment := range assignments {
		weights[assignment]++
	}
	for i := range weights {
		weights[i] /= float64(len(assignments))
	}

	return centroids, weights
}

// initializeCentroidsKMeansPlusPlus picks initial centroids with probability
// proportional to squared distance from those already chosen.
func (e *KMeansExtractor) initializeCentroidsKMeansPlusPlus(points []point3D, k int) []point3D {
	if len(points) == 0 || k == 0 {
		return []point3D{}
	}

	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[e.rng.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		totalDistance := 0.0

		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				minDist = math.Min(minDist, point.distance(centroid))
			}
			distances[i] = minDist * minDist
			totalDistance += distances[i]
		}

		if totalDistance == 0 {
			// Every point coincides with a centroid; perturb the last one.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := e.rng.Float64() * totalDistance
		cumulative := 0.0
		chosen := len(points) - 1
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, points[chosen])
	}

	return centroids
}

// findNearestCentroid finds the index of the nearest centroid to a point.
func findNearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0

	for i, centroid := range centroids {
		dist := point.distance(centroid)
		if dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest
}

// recalculateCentroids moves each centroid to the mean of its points.
// Empty clusters are re-seeded from a random point.
func (e *KMeansExtractor) recalculateCentroids(points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)

	for i, point := range points {
		cluster := assignments[i]
		sums[cluster].R += point.R
		sums[cluster].G += point.G
		sums[cluster].B += point.B
		counts[cluster]++
	}

	centroids := make([]point3D, k)
	for i := range k {
		if counts[i] > 0 {
			n := float64(counts[i])
			centroids[i] = point3D{R: sums[i].R / n, G: sums[i].G / n, B: sums[i].B / n}
		} else {
			centroids[i] = points[e.rng.Intn(len(points))]
		}
	}

	return centroids
}
