package intent

import (
	"fmt"
	"math"
	"sort"

	"github.com/vintrastudio/votebot/internal/botdata"
)

// modelThreshold is the minimum normalized probability for the statistical
// classifier to claim a turn.
const modelThreshold = 0.7

// Model is the optional statistical stage of the cascade. A nil Model is a
// valid configuration; the Classifier skips the stage entirely.
type Model interface {
	// Predict returns the most likely intent label for the text and a
	// probability normalized over all trained labels. An empty label means
	// the model has no opinion.
	Predict(text string) (Intent, float64)
}

// CentroidModel classifies by cosine similarity between a message's tf-idf
// vector and per-intent centroid vectors built from the training corpus.
// With tens of examples per deployment, a nearest-centroid model is as
// much machine learning as the data supports.
type CentroidModel struct {
	idf       map[string]float64
	centroids map[Intent]map[string]float64
	labels    []Intent
}

// TrainModel builds a CentroidModel from the content's example corpus.
// Off-topic examples participate in training so the probability mass has
// somewhere to go for unrelated text; the Classifier discards off-topic
// predictions at use.
func TrainModel(content *botdata.Content) (*CentroidModel, error) {
	type doc struct {
		terms []string
		label Intent
	}
	var docs []doc
	for _, ex := range content.Examples {
		terms := extractTerms(ex.Text)
		if len(terms) == 0 {
			continue
		}
		docs = append(docs, doc{terms: terms, label: Intent(ex.Intent)})
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("cannot train intent model: example corpus is empty")
	}

	// document frequency over the corpus
	df := make(map[string]int)
	for _, d := range docs {
		seen := make(map[string]bool, len(d.terms))
		for _, term := range d.terms {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}
	idf := make(map[string]float64, len(df))
	n := float64(len(docs))
	for term, count := range df {
		idf[term] = math.Log(n/float64(count)) + 1
	}

	// per-label centroid: sum of the examples' unit tf-idf vectors,
	// re-normalized to unit length
	sums := make(map[Intent]map[string]float64)
	for _, d := range docs {
		vec := tfidfVector(d.terms, idf)
		if vec == nil {
			continue
		}
		if sums[d.label] == nil {
			sums[d.label] = make(map[string]float64)
		}
		for term, w := range vec {
			sums[d.label][term] += w
		}
	}

	m := &CentroidModel{idf: idf, centroids: make(map[Intent]map[string]float64, len(sums))}
	for label, sum := range sums {
		m.centroids[label] = unitNormalize(sum)
		m.labels = append(m.labels, label)
	}
	sort.Slice(m.labels, func(i, j int) bool { return m.labels[i] < m.labels[j] })
	return m, nil
}

// Predict scores the text against every centroid and normalizes the cosine
// similarities into a probability distribution over the trained labels.
func (m *CentroidModel) Predict(text string) (Intent, float64) {
	vec := tfidfVector(extractTerms(text), m.idf)
	if vec == nil {
		return "", 0
	}

	var best Intent
	bestSim, total := 0.0, 0.0
	for _, label := range m.labels {
		sim := dot(vec, m.centroids[label])
		total += sim
		if sim > bestSim {
			bestSim = sim
			best = label
		}
	}
	if total == 0 || best == "" {
		return "", 0
	}
	return best, bestSim / total
}

// tfidfVector builds a unit-length tf-idf vector over the given terms.
// Terms unseen at training time carry no idf and are dropped. Returns nil
// when nothing survives.
func tfidfVector(terms []string, idf map[string]float64) map[string]float64 {
	tf := make(map[string]float64)
	for _, term := range terms {
		if _, known := idf[term]; known {
			tf[term]++
		}
	}
	if len(tf) == 0 {
		return nil
	}
	for term := range tf {
		tf[term] *= idf[term]
	}
	return unitNormalize(tf)
}

func unitNormalize(vec map[string]float64) map[string]float64 {
	var sumSq float64
	for _, w := range vec {
		sumSq += w * w
	}
	if sumSq == 0 {
		return vec
	}
	norm := math.Sqrt(sumSq)
	for term := range vec {
		vec[term] /= norm
	}
	return vec
}

func dot(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for term, w := range a {
		sum += w * b[term]
	}
	return sum
}
