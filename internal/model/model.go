// Package model wraps the pre-trained crop classifier. The artifact is
// produced offline by the training pipeline, which exports the fitted
// classifier as per-class feature centroids in JSON; the core only ever
// calls Predict and never inspects or retrains the model.
package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

//go:generate mockgen -destination=../mocks/mock_predictor.go -package=mocks github.com/sandeep-rathod-2004/crop-recommendation-project/internal/model Predictor

type Predictor interface {
	Predict(features []float64) (string, error)
}

type artifact struct {
	Features []string `json:"features"`
	Classes  []class  `json:"classes"`
}

type class struct {
	Label    string    `json:"label"`
	Centroid []float64 `json:"centroid"`
}

// Classifier picks the class whose centroid is nearest to the input in
// feature space.
type Classifier struct {
	featureCount int
	classes      []class
}

func Load(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}

	if len(art.Features) == 0 || len(art.Classes) == 0 {
		return nil, fmt.Errorf("model artifact %s has no features or classes", path)
	}
	for _, c := range art.Classes {
		if len(c.Centroid) != len(art.Features) {
			return nil, fmt.Errorf("class %q centroid has %d values, want %d", c.Label, len(c.Centroid), len(art.Features))
		}
	}

	return &Classifier{featureCount: len(art.Features), classes: art.Classes}, nil
}

func (c *Classifier) Predict(features []float64) (string, error) {
	if len(features) != c.featureCount {
		return "", fmt.Errorf("expected %d features, got %d", c.featureCount, len(features))
	}

	best := ""
	bestDist := math.Inf(1)
	for _, cl := range c.classes {
		var dist float64
		for i, v := range features {
			d := v - cl.Centroid[i]
			dist += d * d
		}
		if dist < bestDist {
			bestDist = dist
			best = cl.Label
		}
	}

	return best, nil
}
