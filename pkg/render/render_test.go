package render

import (
	"strings"
	"testing"
)

func TestContentMarkdownImage(t *testing.T) {
	got := Content(`Intro ![engine bay](https://cdn.example.com/engine.jpg) outro`)

	want := `Intro <img src="https://cdn.example.com/engine.jpg" alt="engine bay" class="w-full max-w-2xl mx-auto my-6 rounded-lg shadow-md" /> outro`
	if got != want {
		t.Errorf("Content() = %q, want %q", got, want)
	}
}

func TestContentMarkdownImageEmptyAlt(t *testing.T) {
	got := Content(`![](https://cdn.example.com/photo.png)`)

	if !strings.Contains(got, `alt=""`) {
		t.Errorf("expected empty alt attribute, got %q", got)
	}
	if !strings.Contains(got, `src="https://cdn.example.com/photo.png"`) {
		t.Errorf("expected src preserved, got %q", got)
	}
}

func TestContentVideoTag(t *testing.T) {
	got := Content(`<video src="https://cdn.example.com/crusher.mp4"></video>`)

	for _, fragment := range []string{
		`<div class="w-full max-w-2xl mx-auto my-6 rounded-lg shadow-md overflow-hidden">`,
		`<video src="https://cdn.example.com/crusher.mp4" controls class="w-full h-auto">`,
		`<source src="https://cdn.example.com/crusher.mp4">`,
		"Your browser does not support the video tag.",
		"</div>",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("missing fragment %q in %q", fragment, got)
		}
	}
}

func TestContentBareImageURL(t *testing.T) {
	got := Content("Look at https://cdn.example.com/yard.webp here")

	want := `Look at <img src="https://cdn.example.com/yard.webp" alt="image" class="w-full max-w-2xl mx-auto my-6 rounded-lg shadow-md" /> here`
	if got != want {
		t.Errorf("Content() = %q, want %q", got, want)
	}
}

func TestContentBareVideoURL(t *testing.T) {
	got := Content("Watch https://cdn.example.com/tour.webm now")

	if !strings.Contains(got, `<video src="https://cdn.example.com/tour.webm" controls class="w-full h-auto">`) {
		t.Errorf("bare video URL not wrapped: %q", got)
	}
	if !strings.HasSuffix(got, " now") {
		t.Errorf("trailing text lost: %q", got)
	}
}

func TestContentBareURLCaseInsensitiveExtension(t *testing.T) {
	got := Content("https://cdn.example.com/photo.JPG")

	if !strings.Contains(got, `<img src="https://cdn.example.com/photo.JPG"`) {
		t.Errorf("uppercase extension not matched: %q", got)
	}
}

func TestContentMarkdownImageNotDoubleWrapped(t *testing.T) {
	got := Content(`![car](https://cdn.example.com/car.png)`)

	if n := strings.Count(got, "<img"); n != 1 {
		t.Errorf("expected exactly one img tag, got %d in %q", n, got)
	}
}

func TestContentVideoTagNotDoubleWrapped(t *testing.T) {
	got := Content(`<video src="https://cdn.example.com/demo.mp4"></video>`)

	if n := strings.Count(got, "<video"); n != 1 {
		t.Errorf("expected exactly one video tag, got %d in %q", n, got)
	}
}

func TestContentURLFollowedByWordCharLeftAlone(t *testing.T) {
	in := "see https://example.com/report.pngsummary for details"
	if got := Content(in); got != in {
		t.Errorf("extension inside a longer path should not be wrapped: %q", got)
	}
}

func TestContentURLFollowedByDotLeftAlone(t *testing.T) {
	in := "hosted at https://example.com/archive.mp4.bak today"
	if got := Content(in); got != in {
		t.Errorf("URL with trailing dot-suffix should not be wrapped: %q", got)
	}
}

func TestContentMultipleBareURLs(t *testing.T) {
	got := Content("first https://a.example.com/1.jpg then https://b.example.com/2.png done")

	if n := strings.Count(got, "<img"); n != 2 {
		t.Errorf("expected two img tags, got %d in %q", n, got)
	}
}

func TestContentMixedPatternsOrder(t *testing.T) {
	in := "![shot](https://x.example.com/a.jpg)\n" +
		`<video src="https://x.example.com/b.mp4"></video>` + "\n" +
		"https://x.example.com/c.gif"
	got := Content(in)

	if n := strings.Count(got, "<img"); n != 2 {
		t.Errorf("expected two img tags, got %d in %q", n, got)
	}
	if n := strings.Count(got, "<video"); n != 1 {
		t.Errorf("expected one video tag, got %d in %q", n, got)
	}
}

func TestContentPlainTextUnchanged(t *testing.T) {
	in := "Just a paragraph about catalytic converters. Visit https://example.com/about for more."
	if got := Content(in); got != in {
		t.Errorf("plain text should pass through unchanged, got %q", got)
	}
}

func TestContentEmpty(t *testing.T) {
	if got := Content(""); got != "" {
		t.Errorf("empty input should stay empty, got %q", got)
	}
}
