package recommend

import "math"

// ItemVector is one catalog item's sparse TF-IDF vector. Terms absent from
// the weight map have implicit weight zero.
type ItemVector struct {
	ItemID  string
	Weights map[string]float64
}

// itemDocument pairs an item identifier with its recommendation document.
type itemDocument struct {
	itemID string
	text   string
}

// buildVectors tokenizes every document, computes per-item relative term
// frequencies, then corpus document frequencies, and finally the sparse
// TF-IDF weights. Items with an empty document keep an empty weight map
// and do not contribute to the vocabulary or the document frequencies.
//
// idf(term) = ln(totalDocs / (df(term)+1)). The +1 guards the division even
// though df >= 1 for every observed term; idf goes negative for terms
// present in nearly every document, which deliberately pushes
// near-universal terms below zero instead of clamping them.
func buildVectors(docs []itemDocument) []ItemVector {
	if len(docs) == 0 {
		return nil
	}

	termFreqs := make([]map[string]float64, len(docs))
	for i, doc := range docs {
		termFreqs[i] = termFrequencies(doc.text)
	}

	docFreqs := make(map[string]int)
	for _, tf := range termFreqs {
		for term := range tf {
			docFreqs[term]++
		}
	}

	totalDocs := float64(len(docs))
	vectors := make([]ItemVector, len(docs))
	for i, doc := range docs {
		weights := make(map[string]float64, len(termFreqs[i]))
		for term, tf := range termFreqs[i] {
			idf := math.Log(totalDocs / float64(docFreqs[term]+1))
			weights[term] = tf * idf
		}
		vectors[i] = ItemVector{ItemID: doc.itemID, Weights: weights}
	}
	return vectors
}

// termFrequencies returns raw term counts divided by the token total —
// plain relative frequency, not augmented.
func termFrequencies(text string) map[string]float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return map[string]float64{}
	}

	counts := make(map[string]float64, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}

	total := float64(len(tokens))
	for term := range counts {
		counts[term] /= total
	}
	return counts
}
