package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some play-through scores
	_, err = store.SaveScore("classic", 9500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("classic", 8200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("classic", 9900)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different pack
	_, err = store.SaveScore("tutorial", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 9900 {
		t.Errorf("Expected highest score to be 9900, got %d", scores[0].Score)
	}
	if scores[1].Score != 9500 {
		t.Errorf("Expected second score to be 9500, got %d", scores[1].Score)
	}
	if scores[2].Score != 8200 {
		t.Errorf("Expected third score to be 8200, got %d", scores[2].Score)
	}

	tutorialScores, err := store.TopScores("tutorial", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(tutorialScores) != 1 {
		t.Errorf("Expected 1 tutorial score, got %d", len(tutorialScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty pack, got %d", high)
	}

	store.SaveScore("classic", 9100)
	store.SaveScore("classic", 9700)
	store.SaveScore("classic", 9400)

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 9700 {
		t.Errorf("Expected high score of 9700, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("classic", 9500)
	store.SaveScore("classic", 9200)
	store.SaveScore("tutorial", 300)
	store.RecordCompletion("classic", "01", 12, 4, 9880)

	// Clear only classic
	err = store.ClearScores("classic")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classicScores, _ := store.TopScores("classic", 10)
	if len(classicScores) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classicScores))
	}

	completions, _ := store.Completions("classic")
	if len(completions) != 0 {
		t.Errorf("Expected 0 classic completions after clear, got %d", len(completions))
	}

	// Tutorial should still have scores
	tutorialScores, _ := store.TopScores("tutorial", 10)
	if len(tutorialScores) != 1 {
		t.Errorf("Tutorial scores should not be affected by clearing classic")
	}
}

func TestStoreRecordCompletionKeepsBest(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if err := store.RecordCompletion("classic", "01", 50, 12, 9500); err != nil {
		t.Fatalf("RecordCompletion() failed: %v", err)
	}

	// Worse score must not replace the stored one
	if err := store.RecordCompletion("classic", "01", 80, 20, 9200); err != nil {
		t.Fatalf("RecordCompletion() failed: %v", err)
	}

	completions, err := store.Completions("classic")
	if err != nil {
		t.Fatalf("Completions() failed: %v", err)
	}
	if len(completions) != 1 {
		t.Fatalf("Expected 1 completion, got %d", len(completions))
	}
	if completions[0].Score != 9500 || completions[0].Moves != 50 {
		t.Errorf("Worse result replaced the best: %+v", completions[0])
	}

	// Better score replaces it
	if err := store.RecordCompletion("classic", "01", 30, 10, 9700); err != nil {
		t.Fatalf("RecordCompletion() failed: %v", err)
	}

	completions, _ = store.Completions("classic")
	if completions[0].Score != 9700 || completions[0].Moves != 30 || completions[0].Pushes != 10 {
		t.Errorf("Better result was not stored: %+v", completions[0])
	}

	// Same score, fewer moves replaces it
	if err := store.RecordCompletion("classic", "01", 25, 10, 9700); err != nil {
		t.Fatalf("RecordCompletion() failed: %v", err)
	}

	completions, _ = store.Completions("classic")
	if completions[0].Moves != 25 {
		t.Errorf("Tie-breaking on moves failed: %+v", completions[0])
	}
}

func TestStoreCompletedLevelIDs(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.RecordCompletion("classic", "01", 10, 3, 9900)
	store.RecordCompletion("classic", "03", 20, 7, 9800)
	store.RecordCompletion("tutorial", "01", 5, 1, 9950)

	done, err := store.CompletedLevelIDs("classic")
	if err != nil {
		t.Fatalf("CompletedLevelIDs() failed: %v", err)
	}

	if len(done) != 2 {
		t.Errorf("Expected 2 completed levels, got %d", len(done))
	}
	if !done["01"] || !done["03"] {
		t.Errorf("Missing expected level IDs: %v", done)
	}
	if done["02"] {
		t.Errorf("Level 02 should not be marked completed")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
