package intent

import (
	"testing"

	"github.com/vintrastudio/votebot/internal/botdata"
)

func TestTrainModelEmptyCorpus(t *testing.T) {
	content := botdata.Default()
	content.Examples = nil

	if _, err := TrainModel(content); err == nil {
		t.Error("TrainModel() with empty corpus: expected error, got nil")
	}
}

func TestModelPredictTrainingPhrase(t *testing.T) {
	m, err := TrainModel(botdata.Default())
	if err != nil {
		t.Fatalf("TrainModel() failed: %v", err)
	}

	label, prob := m.Predict("hva koster spillet")
	if label != Price {
		t.Errorf("Predict() label = %q, want %q", label, Price)
	}
	if prob <= 0 || prob > 1 {
		t.Errorf("Predict() probability = %v, want in (0, 1]", prob)
	}
}

func TestModelPredictUnknownTerms(t *testing.T) {
	m, err := TrainModel(botdata.Default())
	if err != nil {
		t.Fatalf("TrainModel() failed: %v", err)
	}

	// nothing here appears in the training corpus, so the model abstains
	label, prob := m.Predict("xylofon zanzibar quiche")
	if label != "" || prob != 0 {
		t.Errorf("Predict() = (%q, %v), want abstention", label, prob)
	}
}

func TestModelProbabilityNormalized(t *testing.T) {
	m, err := TrainModel(botdata.Default())
	if err != nil {
		t.Fatalf("TrainModel() failed: %v", err)
	}

	for _, text := range []string{"hva koster spillet", "hei", "når kommer spillet"} {
		if _, prob := m.Predict(text); prob < 0 || prob > 1 {
			t.Errorf("Predict(%q) probability = %v, want within [0, 1]", text, prob)
		}
	}
}
