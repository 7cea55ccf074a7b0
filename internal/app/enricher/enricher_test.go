package enricher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/zzoony/logos-app/internal/domain"
)

// fakeClient defines words deterministically and can be told to fail
// batches containing certain words a fixed number of times.
type fakeClient struct {
	mu       sync.Mutex
	calls    int
	failures map[string]int // word -> remaining failures for its batch
	skip     map[string]bool
}

func (f *fakeClient) Define(_ context.Context, words []string) ([]Definition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	for _, w := range words {
		if f.failures[w] > 0 {
			f.failures[w]--
			return nil, fmt.Errorf("simulated failure for %s", w)
		}
	}

	var defs []Definition
	for _, w := range words {
		if f.skip[w] {
			continue
		}
		defs = append(defs, Definition{
			Word:                w,
			IPAPronunciation:    "/" + w + "/",
			KoreanPronunciation: w + "-kr",
			DefinitionKorean:    w + " 정의",
		})
	}
	return defs, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *Config {
	return &Config{BatchSize: 2, MaxWorkers: 2}
}

func TestEnrichWords_AllDefined(t *testing.T) {
	client := &fakeClient{}
	e := New(testLogger(), client, testConfig())

	words := []string{"love", "faith", "hope", "grace", "mercy"}
	res := e.EnrichWords(context.Background(), words)

	if len(res.Failed) != 0 {
		t.Fatalf("Failed = %v, want none", res.Failed)
	}
	if len(res.Defined) != len(words) {
		t.Fatalf("Defined has %d entries, want %d", len(res.Defined), len(words))
	}
	if d := res.Defined["love"]; d.DefinitionKorean != "love 정의" {
		t.Errorf("love definition = %+v", d)
	}
	if client.calls != 3 { // 5 words in batches of 2
		t.Errorf("client calls = %d, want 3", client.calls)
	}
}

func TestEnrichWords_RetryRecoversFailedBatch(t *testing.T) {
	client := &fakeClient{failures: map[string]int{"hope": 1}}
	e := New(testLogger(), client, testConfig())

	res := e.EnrichWords(context.Background(), []string{"love", "faith", "hope", "grace"})

	if len(res.Failed) != 0 {
		t.Fatalf("Failed = %v, want the retry round to recover", res.Failed)
	}
	if _, ok := res.Defined["hope"]; !ok {
		t.Error("hope missing after retry")
	}
}

func TestEnrichWords_PersistentFailuresReported(t *testing.T) {
	client := &fakeClient{skip: map[string]bool{"selah": true}}
	e := New(testLogger(), client, testConfig())

	res := e.EnrichWords(context.Background(), []string{"love", "selah"})

	if len(res.Failed) != 1 || res.Failed[0] != "selah" {
		t.Fatalf("Failed = %v, want [selah]", res.Failed)
	}
	if _, ok := res.Defined["love"]; !ok {
		t.Error("love should still be defined")
	}
}

func TestEnrichWords_OnBatchProgress(t *testing.T) {
	client := &fakeClient{}
	e := New(testLogger(), client, testConfig())

	var mu sync.Mutex
	var lastDone, lastTotal int
	e.OnBatch = func(done, total int) {
		mu.Lock()
		defer mu.Unlock()
		lastDone, lastTotal = done, total
	}

	e.EnrichWords(context.Background(), []string{"a", "b", "c", "d", "e"})

	if lastDone != 3 || lastTotal != 3 {
		t.Errorf("final progress = %d/%d, want 3/3", lastDone, lastTotal)
	}
}

func TestEnrichWords_CancelledContextSkipsRetry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &fakeClient{skip: map[string]bool{"selah": true}}
	e := New(testLogger(), client, testConfig())

	res := e.EnrichWords(ctx, []string{"love", "selah"})

	if len(res.Failed) != 1 || res.Failed[0] != "selah" {
		t.Fatalf("Failed = %v, want [selah]", res.Failed)
	}
	if client.calls != 1 {
		t.Errorf("client calls = %d, want 1 (no retry round after cancellation)", client.calls)
	}
}

func TestMerge(t *testing.T) {
	words := []domain.SentencedWord{
		{Word: "love", Count: 10, Rank: 1, SentenceIDs: []string{"genesis-1-1"}},
		{Word: "selah", Count: 3, Rank: 2, SentenceIDs: []string{}},
	}
	defined := map[string]Definition{
		"love": {Word: "love", IPAPronunciation: "/lʌv/", KoreanPronunciation: "러브", DefinitionKorean: "사랑"},
	}

	got := Merge(words, defined)

	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].ID != 0 || got[1].ID != 1 {
		t.Errorf("ids = %d,%d, want sequential from 0", got[0].ID, got[1].ID)
	}
	if got[0].DefinitionKorean != "사랑" || got[0].IPAPronunciation != "/lʌv/" {
		t.Errorf("love = %+v", got[0])
	}
	if got[1].DefinitionKorean != "" || got[1].IPAPronunciation != "" || got[1].KoreanPronunciation != "" {
		t.Errorf("undefined word must carry explicit empty strings, got %+v", got[1])
	}
	if got[1].Rank != 2 || got[1].Count != 3 {
		t.Errorf("rank/count not carried: %+v", got[1])
	}
}

func TestSplitBatches(t *testing.T) {
	tests := []struct {
		words []string
		size  int
		want  int
	}{
		{[]string{"a", "b", "c", "d", "e"}, 2, 3},
		{[]string{"a", "b"}, 50, 1},
		{nil, 10, 0},
		{[]string{"a"}, 0, 1},
	}
	for _, tt := range tests {
		if got := len(splitBatches(tt.words, tt.size)); got != tt.want {
			t.Errorf("splitBatches(%d words, size %d) = %d batches, want %d",
				len(tt.words), tt.size, got, tt.want)
		}
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"bare array", `[{"word":"a"}]`, `[{"word":"a"}]`, false},
		{"surrounded by prose", "Here you go:\n[1, 2]\nDone.", "[1, 2]", false},
		{"no array", "sorry, cannot help", "", true},
		{"reversed brackets", "] text [", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSONArray(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
