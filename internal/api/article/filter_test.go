package articles

import "testing"

func sampleList() []ArticleResponse {
	return []ArticleResponse{
		{ID: "1", Title: "Catalytic Converter Prices Surge", Excerpt: "Precious metals drive demand", Content: "Platinum and palladium recovery...", CategoryID: "cat-market"},
		{ID: "2", Title: "New EPA Rules for Auto Dismantlers", Excerpt: "Compliance deadline approaches", Content: "Fluid handling requirements...", CategoryID: "cat-regulation"},
		{ID: "3", Title: "EV Battery Recycling Takes Off", Excerpt: "Lithium recovery at scale", Content: "Second-life battery programs...", CategoryID: "cat-market"},
	}
}

func TestFilterArticlesNoFilters(t *testing.T) {
	list := sampleList()
	got := FilterArticles(list, "", "")
	if len(got) != len(list) {
		t.Fatalf("expected all %d articles, got %d", len(list), len(got))
	}
}

func TestFilterArticlesByCategory(t *testing.T) {
	got := FilterArticles(sampleList(), "cat-market", "")
	if len(got) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(got))
	}
	for _, a := range got {
		if a.CategoryID != "cat-market" {
			t.Errorf("article %s has category %s", a.ID, a.CategoryID)
		}
	}
}

func TestFilterArticlesByQueryTitle(t *testing.T) {
	got := FilterArticles(sampleList(), "", "epa rules")
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected article 2, got %+v", got)
	}
}

func TestFilterArticlesByQueryExcerpt(t *testing.T) {
	got := FilterArticles(sampleList(), "", "lithium")
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected article 3, got %+v", got)
	}
}

func TestFilterArticlesByQueryContent(t *testing.T) {
	got := FilterArticles(sampleList(), "", "palladium")
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected article 1, got %+v", got)
	}
}

func TestFilterArticlesQueryIsCaseInsensitive(t *testing.T) {
	got := FilterArticles(sampleList(), "", "CATALYTIC")
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected article 1, got %+v", got)
	}
}

func TestFilterArticlesCombined(t *testing.T) {
	got := FilterArticles(sampleList(), "cat-market", "battery")
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected article 3, got %+v", got)
	}
}

func TestFilterArticlesCategoryIsExactMatch(t *testing.T) {
	got := FilterArticles(sampleList(), "cat-mark", "")
	if len(got) != 0 {
		t.Fatalf("prefix of a category ID must not match, got %d articles", len(got))
	}
}

func TestFilterArticlesNoMatches(t *testing.T) {
	got := FilterArticles(sampleList(), "", "submarine")
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestFilterArticlesEmptyList(t *testing.T) {
	got := FilterArticles(nil, "cat-market", "anything")
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}
