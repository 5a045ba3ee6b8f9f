package domain

// Topic is a latent corpus cluster discovered by the topic modeler.
type Topic struct {
	// ID is the cluster index.
	ID int

	// Terms are the highest-weighted terms of the cluster centroid,
	// most significant first.
	Terms []string

	// DocumentCount is the number of documents assigned to the topic.
	DocumentCount int
}

// TopicAssignment links a document to its topic.
type TopicAssignment struct {
	DocumentID  string
	TopicID     int
	Probability float64
}
