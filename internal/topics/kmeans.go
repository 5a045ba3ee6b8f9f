package topics

import (
	"math"
	"math/rand"
)

const (
	// DefaultIterations bounds the k-means refinement loop.
	DefaultIterations = 50

	// DefaultSeed fixes centroid initialization for reproducible runs.
	DefaultSeed = 42
)

// kmeans clusters unit vectors into k groups. Initialization is
// farthest-first: the seed picks the first centroid and each further
// centroid is the vector least similar to those already chosen, so
// identical input yields identical clusters and near-duplicate seeds
// are avoided. Returns each vector's cluster index, its cosine
// similarity to the winning centroid, and the final centroids.
func kmeans(vectors [][]float64, k int, seed int64) (assignments []int, similarities []float64, centroids [][]float64) {
	if k > len(vectors) {
		k = len(vectors)
	}

	dim := len(vectors[0])
	centroids = initCentroids(vectors, k, seed)

	assignments = make([]int, len(vectors))
	similarities = make([]float64, len(vectors))

	for iter := 0; iter < DefaultIterations; iter++ {
		changed := false
		for i, vec := range vectors {
			best, bestSim := 0, math.Inf(-1)
			for c, centroid := range centroids {
				if sim := dot(vec, centroid); sim > bestSim {
					best, bestSim = c, sim
				}
			}
			if assignments[i] != best {
				changed = true
			}
			assignments[i] = best
			similarities[i] = bestSim
		}
		if !changed && iter > 0 {
			break
		}

		// Recompute centroids as the normalized mean of their members.
		for c := range centroids {
			mean := make([]float64, dim)
			count := 0
			for i, a := range assignments {
				if a != c {
					continue
				}
				for d, val := range vectors[i] {
					mean[d] += val
				}
				count++
			}
			if count == 0 {
				continue // empty cluster keeps its old centroid
			}
			for d := range mean {
				mean[d] /= float64(count)
			}
			centroids[c] = normalize(mean)
		}
	}

	return assignments, similarities, centroids
}

// initCentroids seeds k centroids by farthest-first traversal.
func initCentroids(vectors [][]float64, k int, seed int64) [][]float64 {
	first := rand.New(rand.NewSource(seed)).Intn(len(vectors))

	centroids := make([][]float64, 0, k)
	centroids = append(centroids, append([]float64(nil), vectors[first]...))

	// maxSim[i] tracks each vector's similarity to its closest centroid.
	maxSim := make([]float64, len(vectors))
	for i, vec := range vectors {
		maxSim[i] = dot(vec, centroids[0])
	}

	for len(centroids) < k {
		next, nextSim := 0, math.Inf(1)
		for i, sim := range maxSim {
			if sim < nextSim {
				next, nextSim = i, sim
			}
		}
		centroid := append([]float64(nil), vectors[next]...)
		centroids = append(centroids, centroid)
		for i, vec := range vectors {
			if sim := dot(vec, centroid); sim > maxSim[i] {
				maxSim[i] = sim
			}
		}
	}
	return centroids
}

// dot is cosine similarity for unit vectors.
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
