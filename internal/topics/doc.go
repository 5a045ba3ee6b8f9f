// Package topics clusters the corpus into latent topics for exploratory
// analysis. Documents are vectorized with TF-IDF and grouped with
// deterministic k-means; each cluster reports its top centroid terms.
package topics
