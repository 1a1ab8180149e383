package analyzer

import (
	"reflect"
	"strings"
	"testing"
)

func TestKeywordExtractorExtract(t *testing.T) {
	e := NewKeywordExtractor()

	t.Run("frequency ranking", func(t *testing.T) {
		text := "kubernetes kubernetes kubernetes docker docker terraform"
		got := e.Extract(text, 20)

		if len(got.SingleWords) != 3 {
			t.Fatalf("got %d keywords, want 3", len(got.SingleWords))
		}
		if got.SingleWords[0].Keyword != "kubernetes" || got.SingleWords[0].Frequency != 3 {
			t.Errorf("top keyword = %+v, want kubernetes/3", got.SingleWords[0])
		}
		if got.SingleWords[1].Keyword != "docker" || got.SingleWords[1].Frequency != 2 {
			t.Errorf("second keyword = %+v, want docker/2", got.SingleWords[1])
		}
	})

	t.Run("ties break by first occurrence", func(t *testing.T) {
		got := e.Extract("zebra apple zebra apple", 20)
		want := []string{"zebra", "apple"}
		keywords := []string{}
		for _, kw := range got.SingleWords {
			keywords = append(keywords, kw.Keyword)
		}
		if !reflect.DeepEqual(keywords, want) {
			t.Errorf("keywords = %v, want %v", keywords, want)
		}
	})

	t.Run("stop words removed", func(t *testing.T) {
		got := e.Extract("the and with python because should", 20)
		if len(got.SingleWords) != 1 || got.SingleWords[0].Keyword != "python" {
			t.Errorf("keywords = %v, want only python", got.SingleWords)
		}
	})

	t.Run("short and numeric tokens dropped", func(t *testing.T) {
		got := e.Extract("go c 42 2024 golang", 20)
		if len(got.SingleWords) != 1 || got.SingleWords[0].Keyword != "golang" {
			t.Errorf("keywords = %v, want only golang", got.SingleWords)
		}
	})

	t.Run("plus and hash preserved in tokens", func(t *testing.T) {
		got := e.Extract("c++ programmer, c++ expert", 20)
		if got.SingleWords[0].Keyword != "c++" {
			t.Errorf("top keyword = %q, want c++", got.SingleWords[0].Keyword)
		}
	})

	t.Run("counting is case sensitive", func(t *testing.T) {
		got := e.Extract("Python python Python", 20)
		if len(got.SingleWords) != 2 {
			t.Fatalf("got %d keywords, want 2 distinct casings", len(got.SingleWords))
		}
		if got.SingleWords[0].Keyword != "Python" || got.SingleWords[0].Frequency != 2 {
			t.Errorf("top keyword = %+v, want Python/2", got.SingleWords[0])
		}
	})

	t.Run("topN truncation", func(t *testing.T) {
		words := []string{"alpha", "bravo", "charlie", "delta", "echo"}
		got := e.Extract(strings.Join(words, " "), 3)
		if len(got.SingleWords) != 3 {
			t.Errorf("got %d keywords, want 3", len(got.SingleWords))
		}
	})

	t.Run("phrases extracted case-insensitively and deduplicated", func(t *testing.T) {
		text := "We do Machine Learning and machine learning plus data science."
		got := e.Extract(text, 20)
		want := []string{"machine learning", "data science"}
		if !reflect.DeepEqual(got.Phrases, want) {
			t.Errorf("phrases = %v, want %v", got.Phrases, want)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		got := e.Extract("", 20)
		if len(got.SingleWords) != 0 || len(got.Phrases) != 0 {
			t.Errorf("expected empty result, got %+v", got)
		}
	})
}

func BenchmarkKeywordExtract(b *testing.B) {
	e := NewKeywordExtractor()
	text := strings.Repeat("senior golang engineer building cloud native microservices with kubernetes docker terraform and machine learning pipelines ", 20)

	for b.Loop() {
		e.Extract(text, 20)
	}
}
